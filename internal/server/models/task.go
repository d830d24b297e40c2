package models

// Task is an entry of the to-do list.
type Task struct {
	ID         string `json:"id"`
	Titulo     string `json:"titulo"`
	Completada bool   `json:"completada"`
}

type TaskInput struct {
	Titulo OptionalString `json:"titulo"`
}

// User is the authenticated principal.
type User struct {
	Username string `json:"username"`
}
