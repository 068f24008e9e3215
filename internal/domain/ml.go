package domain

// DonorMatch pairs a donor with a community campaign.
type DonorMatch struct {
	DonorID       int64   `json:"donor_id"`
	CampaignID    int64   `json:"campaign_id"`
	CampaignTitle string  `json:"campaign_title"`
	MatchScore    float64 `json:"match_score"`
	MatchReason   string  `json:"match_reason"`
}

// FundingPrediction is the forecast returned for a campaign.
type FundingPrediction struct {
	CampaignID       int64   `json:"campaign_id"`
	PredictedFunding float64 `json:"predicted_funding"`
	Confidence       float64 `json:"confidence"`
	DaysToGoal       *int    `json:"days_to_goal,omitempty"`
}

// Recommendation is a free-form suggestion surfaced to staff.
type Recommendation struct {
	Title    string  `json:"title"`
	Detail   string  `json:"detail"`
	Priority string  `json:"priority"`
	Score    float64 `json:"score"`
}
