package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

const (
	msgBodyRequired   = "El cuerpo de la petición es requerido"
	msgBodyInvalid    = "El cuerpo de la petición debe ser un JSON válido"
	msgInternalServer = "Error interno del servidor"
)

var errEmptyBody = errors.New("empty body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody reads a single JSON document into dst. An empty body yields
// errEmptyBody so callers can choose between rejecting it and treating it as {}.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}
