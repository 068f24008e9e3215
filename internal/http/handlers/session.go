package handlers

import (
	"net/http"
	"strings"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login exchanges credentials with the backend. The token stays in client
// storage and is not echoed back.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password required")
		return
	}
	session, err := a.Gateway.Auth().Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"authenticated": true, "token_type": session.TokenType})
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email, password and name required")
		return
	}
	session, err := a.Gateway.Auth().Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"authenticated": true, "token_type": session.TokenType})
}

func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.Gateway.Auth().Logout(r.Context()); err != nil {
		a.backendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
