package handlers

import (
	"net/http"

	"campaignhub/internal/middleware"
	"campaignhub/internal/views"
)

type formattedSummary struct {
	TotalGoal        string  `json:"totalGoal"`
	TotalRaised      string  `json:"totalRaised"`
	TotalContributed string  `json:"totalContributed"`
	OverallFunding   *string `json:"overallFunding"`
}

// Summary returns totals computed from the local stores, with amounts
// rendered for the request locale.
func (a *App) Summary(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	s := views.Summarize(a.Root.State())
	f := formattedSummary{
		TotalGoal:        views.FormatAmount(locale, s.TotalGoal),
		TotalRaised:      views.FormatAmount(locale, s.TotalRaised),
		TotalContributed: views.FormatAmount(locale, s.TotalContributed),
	}
	if s.OverallFunding != nil {
		pct := views.FormatPercent(locale, *s.OverallFunding)
		f.OverallFunding = &pct
	}
	a.json(w, http.StatusOK, map[string]any{
		"locale":          locale,
		"activeCampaigns": s.ActiveCampaigns(),
		"summary":         s,
		"formatted":       f,
	})
}
