package handlers

import (
	"net/http"
)

// The analytics and ML endpoints are read-through: nothing is stored locally.

func (a *App) Metrics(w http.ResponseWriter, r *http.Request) {
	out, err := a.Gateway.Analytics().DashboardMetrics(r.Context())
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, out)
}

func (a *App) Coverage(w http.ResponseWriter, r *http.Request) {
	out, err := a.Gateway.Analytics().CommunityCoverage(r.Context())
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) FundingTrends(w http.ResponseWriter, r *http.Request) {
	out, err := a.Gateway.Analytics().FundingTrends(r.Context())
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) Recommendations(w http.ResponseWriter, r *http.Request) {
	out, err := a.Gateway.ML().Recommendations(r.Context())
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) DonorMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "communityID")
	if !ok {
		return
	}
	out, err := a.Gateway.ML().DonorMatches(r.Context(), id)
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) PredictFunding(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "campaignID")
	if !ok {
		return
	}
	out, err := a.Gateway.ML().PredictFunding(r.Context(), id)
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, out)
}
