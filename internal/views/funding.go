package views

import (
	"math"

	"campaignhub/internal/domain"
)

// FundingPercent returns raised as a percentage of goal. The value is not
// capped, so over-funded campaigns exceed 100. For goal <= 0 the percentage is
// undefined and FundingPercent returns (NaN, false).
func FundingPercent(raised, goal float64) (float64, bool) {
	if goal <= 0 {
		return math.NaN(), false
	}
	return raised / goal * 100, true
}

// CampaignFunding is FundingPercent for c.
func CampaignFunding(c domain.Campaign) (float64, bool) {
	return FundingPercent(c.Raised, c.Goal)
}
