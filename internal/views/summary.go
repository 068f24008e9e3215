package views

import (
	"campaignhub/internal/domain"
	"campaignhub/internal/store"
)

// Summary holds dashboard totals computed locally from a store snapshot.
type Summary struct {
	Version             uint64                        `json:"version"`
	Campaigns           int                           `json:"campaigns"`
	CampaignsByStatus   map[domain.CampaignStatus]int `json:"campaignsByStatus"`
	TotalGoal           float64                       `json:"totalGoal"`
	TotalRaised         float64                       `json:"totalRaised"`
	OverallFunding      *float64                      `json:"overallFunding"`
	TargetBeneficiaries int                           `json:"targetBeneficiaries"`
	Communities         int                           `json:"communities"`
	CommunitiesByNeed   map[domain.NeedLevel]int      `json:"communitiesByNeed"`
	Population          int                           `json:"population"`
	Donors              int                           `json:"donors"`
	DonorsByType        map[domain.DonorType]int      `json:"donorsByType"`
	TotalContributed    float64                       `json:"totalContributed"`
}

// ActiveCampaigns is the number of campaigns labelled active.
func (s Summary) ActiveCampaigns() int {
	return s.CampaignsByStatus[domain.CampaignStatusActive]
}

// Summarize folds the tree into totals. Nothing is cached; call it again after
// every transition.
func Summarize(tree store.Tree) Summary {
	s := Summary{
		Version:           tree.Version,
		Campaigns:         tree.Campaigns.Len(),
		CampaignsByStatus: make(map[domain.CampaignStatus]int),
		Communities:       tree.Communities.Len(),
		CommunitiesByNeed: make(map[domain.NeedLevel]int),
		Donors:            tree.Donors.Len(),
		DonorsByType:      make(map[domain.DonorType]int),
	}
	for _, c := range tree.Campaigns.Items {
		s.CampaignsByStatus[c.Status]++
		s.TotalGoal += c.Goal
		s.TotalRaised += c.Raised
		s.TargetBeneficiaries += c.TargetBeneficiaries
	}
	if pct, ok := FundingPercent(s.TotalRaised, s.TotalGoal); ok {
		s.OverallFunding = &pct
	}
	for _, c := range tree.Communities.Items {
		s.CommunitiesByNeed[c.NeedLevel]++
		s.Population += c.Population
	}
	for _, d := range tree.Donors.Items {
		s.DonorsByType[d.Type]++
		s.TotalContributed += d.TotalContributed
	}
	return s
}
