package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"campaignhub/internal/domain"
	"campaignhub/internal/gateway"
	"campaignhub/internal/infra"
	"campaignhub/internal/store"
	"campaignhub/internal/syncer"
)

// App serves the aggregated stores to local dashboard surfaces.
type App struct {
	Root    *store.Root
	Sync    *syncer.Syncer
	Gateway *gateway.Client
	Logger  *infra.Logger
	Now     func() time.Time
}

func NewApp(s *syncer.Syncer, client *gateway.Client, logger *infra.Logger) *App {
	return &App{
		Root:    s.Root(),
		Sync:    s,
		Gateway: client,
		Logger:  infra.OrNop(logger),
		Now:     time.Now,
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// backendError maps a gateway failure onto a response. Client errors from the
// backend keep their status; everything else is a bad gateway.
func (a *App) backendError(w http.ResponseWriter, r *http.Request, err error) {
	msg := gateway.Message(err)
	var apiErr *gateway.APIError
	var transportErr *gateway.TransportError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", msg)
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, apiErrStatus(err, http.StatusUnauthorized), "unauthorized", msg)
	case errors.Is(err, gateway.ErrNoTokenStore):
		a.error(w, http.StatusServiceUnavailable, "unavailable", "token storage not configured")
	case errors.As(err, &transportErr):
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("backend unreachable")
		a.error(w, http.StatusServiceUnavailable, "backend_unreachable", msg)
	case errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		a.error(w, apiErr.StatusCode, "rejected", msg)
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("backend call failed")
		a.error(w, http.StatusBadGateway, "bad_gateway", msg)
	}
}

func apiErrStatus(err error, fallback int) int {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return fallback
}

func (a *App) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", param+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}
