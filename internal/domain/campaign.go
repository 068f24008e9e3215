package domain

import "strings"

// CampaignStatus enumerates the lifecycle labels shown for a campaign.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusUpcoming  CampaignStatus = "upcoming"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusCompleted, CampaignStatusUpcoming:
		return true
	}
	return false
}

// Campaign is a fundraising drive run for a community.
//
// Status is set explicitly by callers; it is never derived from Raised and
// Goal, so a campaign may be fully funded and still active.
type Campaign struct {
	ID                  int64          `json:"id"`
	Title               string         `json:"title"`
	Community           string         `json:"community"`
	Goal                float64        `json:"goal"`
	Raised              float64        `json:"raised"`
	Status              CampaignStatus `json:"status"`
	Description         string         `json:"description,omitempty"`
	TargetBeneficiaries int            `json:"targetBeneficiaries"`
}

func (c Campaign) EntityID() int64 { return c.ID }

// Validate checks the shape of a campaign decoded from the backend.
func (c Campaign) Validate() error {
	switch {
	case c.ID <= 0:
		return invalid("campaign", "id must be positive, got %d", c.ID)
	case strings.TrimSpace(c.Title) == "":
		return invalid("campaign", "title is required")
	case c.Goal <= 0:
		return invalid("campaign", "goal must be positive, got %v", c.Goal)
	case c.Raised < 0:
		return invalid("campaign", "raised must not be negative, got %v", c.Raised)
	case !c.Status.Valid():
		return invalid("campaign", "unknown status %q", c.Status)
	case c.TargetBeneficiaries < 0:
		return invalid("campaign", "targetBeneficiaries must not be negative")
	}
	return nil
}
