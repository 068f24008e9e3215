package handlers

import (
	"context"
	"net/http"
	"strings"

	"campaignhub/internal/domain"
	"campaignhub/internal/store"
	"campaignhub/internal/views"
)

type listResponse[T any] struct {
	Items   []T     `json:"items"`
	Total   int     `json:"total"`
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
	Version uint64  `json:"version"`
}

type campaignView struct {
	domain.Campaign
	FundingPercent *float64       `json:"fundingPercent"`
	Severity       views.Severity `json:"severity"`
}

type communityView struct {
	domain.Community
	Severity views.Severity `json:"severity"`
}

type donorView struct {
	domain.Donor
	Severity views.Severity `json:"severity"`
}

func respondList[T domain.Entity, V any](a *App, w http.ResponseWriter, state store.State[T], version uint64, matched []T, view func(T) V) {
	items := make([]V, 0, len(matched))
	for _, item := range matched {
		items = append(items, view(item))
	}
	a.json(w, http.StatusOK, listResponse[V]{
		Items:   items,
		Total:   state.Len(),
		Loading: state.Loading,
		Error:   state.Err,
		Version: version,
	})
}

func query(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

func viewCampaign(c domain.Campaign) campaignView {
	v := campaignView{Campaign: c, Severity: views.CampaignSeverity(c.Status)}
	if pct, ok := views.CampaignFunding(c); ok {
		v.FundingPercent = &pct
	}
	return v
}

func viewCommunity(c domain.Community) communityView {
	return communityView{Community: c, Severity: views.NeedSeverity(c.NeedLevel)}
}

func viewDonor(d domain.Donor) donorView {
	return donorView{Donor: d, Severity: views.DonorTypeSeverity(d.Type)}
}

func (a *App) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	tree := a.Root.State()
	matched := views.SearchCampaigns(query(r), tree.Campaigns.Items)
	respondList(a, w, tree.Campaigns, tree.Version, matched, viewCampaign)
}

func (a *App) ListCommunities(w http.ResponseWriter, r *http.Request) {
	tree := a.Root.State()
	matched := views.SearchCommunities(query(r), tree.Communities.Items)
	respondList(a, w, tree.Communities, tree.Version, matched, viewCommunity)
}

func (a *App) ListDonors(w http.ResponseWriter, r *http.Request) {
	tree := a.Root.State()
	matched := views.SearchDonors(query(r), tree.Donors.Items)
	respondList(a, w, tree.Donors, tree.Version, matched, viewDonor)
}

// respondOne serves id from the local store and asks the backend only on a
// miss. A fetched record is returned as-is and never added to the store.
func respondOne[T domain.Entity, V any](a *App, w http.ResponseWriter, r *http.Request, state store.State[T], fetch func(context.Context, int64) (T, error), view func(T) V) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	item, found := state.Find(id)
	if !found {
		var err error
		if item, err = fetch(r.Context(), id); err != nil {
			a.backendError(w, r, err)
			return
		}
	}
	a.json(w, http.StatusOK, view(item))
}

func (a *App) GetCampaign(w http.ResponseWriter, r *http.Request) {
	respondOne(a, w, r, a.Root.State().Campaigns, a.Gateway.Campaigns().Get, viewCampaign)
}

func (a *App) GetCommunity(w http.ResponseWriter, r *http.Request) {
	respondOne(a, w, r, a.Root.State().Communities, a.Gateway.Communities().Get, viewCommunity)
}

func (a *App) GetDonor(w http.ResponseWriter, r *http.Request) {
	respondOne(a, w, r, a.Root.State().Donors, a.Gateway.Donors().Get, viewDonor)
}

func (a *App) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.Campaign
	if !a.decode(w, r, &in) {
		return
	}
	created, err := a.Sync.CreateCampaign(r.Context(), cleanCampaign(in))
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.Campaign
	if !a.decode(w, r, &in) {
		return
	}
	in.ID = id
	updated, err := a.Sync.UpdateCampaign(r.Context(), cleanCampaign(in))
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := a.Sync.DeleteCampaign(r.Context(), id); err != nil {
		a.backendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	var in domain.Community
	if !a.decode(w, r, &in) {
		return
	}
	created, err := a.Sync.CreateCommunity(r.Context(), cleanCommunity(in))
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateCommunity(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.Community
	if !a.decode(w, r, &in) {
		return
	}
	in.ID = id
	updated, err := a.Sync.UpdateCommunity(r.Context(), cleanCommunity(in))
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) DeleteCommunity(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := a.Sync.DeleteCommunity(r.Context(), id); err != nil {
		a.backendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) CreateDonor(w http.ResponseWriter, r *http.Request) {
	var in domain.Donor
	if !a.decode(w, r, &in) {
		return
	}
	created, err := a.Sync.CreateDonor(r.Context(), cleanDonor(in))
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.Donor
	if !a.decode(w, r, &in) {
		return
	}
	in.ID = id
	updated, err := a.Sync.UpdateDonor(r.Context(), cleanDonor(in))
	if err != nil {
		a.backendError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}
