package domain

import "strings"

// NeedLevel grades how urgently a community needs support.
type NeedLevel string

const (
	NeedLevelCritical NeedLevel = "critical"
	NeedLevelHigh     NeedLevel = "high"
	NeedLevelModerate NeedLevel = "moderate"
)

func (n NeedLevel) Valid() bool {
	switch n {
	case NeedLevelCritical, NeedLevelHigh, NeedLevelModerate:
		return true
	}
	return false
}

// Community is a served population. Programs keeps the backend order and may
// contain duplicates.
type Community struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Region     string    `json:"region"`
	Population int       `json:"population"`
	NeedLevel  NeedLevel `json:"needLevel"`
	Programs   []string  `json:"programs"`
}

func (c Community) EntityID() int64 { return c.ID }

// Validate checks the shape of a community decoded from the backend.
func (c Community) Validate() error {
	switch {
	case c.ID <= 0:
		return invalid("community", "id must be positive, got %d", c.ID)
	case strings.TrimSpace(c.Name) == "":
		return invalid("community", "name is required")
	case c.Population < 0:
		return invalid("community", "population must not be negative")
	case !c.NeedLevel.Valid():
		return invalid("community", "unknown need level %q", c.NeedLevel)
	}
	return nil
}
