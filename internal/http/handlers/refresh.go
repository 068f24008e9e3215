package handlers

import (
	"context"
	"net/http"
	"strings"

	"campaignhub/internal/store"
)

// Refresh reloads one store (?slice=campaigns|communities|donors) or all of
// them. The outcome is also recorded in the stores themselves.
func (a *App) Refresh(w http.ResponseWriter, r *http.Request) {
	var run func(context.Context) error
	switch store.Slice(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("slice")))) {
	case "":
		run = a.Sync.RefreshAll
	case store.SliceCampaigns:
		run = a.Sync.RefreshCampaigns
	case store.SliceCommunities:
		run = a.Sync.RefreshCommunities
	case store.SliceDonors:
		run = a.Sync.RefreshDonors
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "unknown slice")
		return
	}
	if err := run(r.Context()); err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"version": a.Root.State().Version})
}
