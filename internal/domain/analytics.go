package domain

// DashboardMetrics is the backend aggregate shown on the dashboard header.
type DashboardMetrics struct {
	TotalCommunities       int              `json:"total_communities"`
	ActiveCampaigns        int              `json:"active_campaigns"`
	TotalFunding           float64          `json:"total_funding"`
	GirlsHelped            int              `json:"girls_helped"`
	PadsDistributed        int              `json:"pads_distributed"`
	AvgCampaignSuccessRate float64          `json:"avg_campaign_success_rate"`
	TopDonors              []map[string]any `json:"top_donors"`
	TrendingCampaigns      []map[string]any `json:"trending_campaigns"`
}

// CoverageEntry reports how many people a region's programs reach.
type CoverageEntry struct {
	Region    string `json:"region"`
	Reached   int    `json:"reached"`
	Target    int    `json:"target"`
	Campaigns int    `json:"campaigns"`
}

// FundingTrendPoint is one period of the funding trend series.
type FundingTrendPoint struct {
	Period string  `json:"period"`
	Raised float64 `json:"raised"`
	Goal   float64 `json:"goal"`
}
