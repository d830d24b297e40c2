package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

const (
	msgCredentialsRequired = "Username y password son requeridos"
	msgCredentialsInvalid  = "Credenciales inválidas"
)

// LoginService exchanges a username and password for a signed token.
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "user logged in", "username", req.Username)
		writeJSON(w, http.StatusOK, loginResponse{Token: token, User: models.User{Username: req.Username}})
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, msgCredentialsRequired)
	case errors.Is(err, common.ErrorUnauthorized):
		h.logger.Warn(r.Context(), "login rejected", "username", req.Username)
		writeError(w, http.StatusUnauthorized, msgCredentialsInvalid)
	default:
		h.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalServer)
	}
}
