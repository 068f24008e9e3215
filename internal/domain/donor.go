package domain

import "strings"

// DonorType classifies a donor.
type DonorType string

const (
	DonorTypeIndividual DonorType = "individual"
	DonorTypeCorporate  DonorType = "corporate"
	DonorTypeNGO        DonorType = "ngo"
)

func (t DonorType) Valid() bool {
	switch t {
	case DonorTypeIndividual, DonorTypeCorporate, DonorTypeNGO:
		return true
	}
	return false
}

// Donor is a supporter relationship tracked by staff.
type Donor struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               DonorType `json:"type"`
	TotalContributed   float64   `json:"totalContributed"`
	CampaignsSupported int       `json:"campaignsSupported"`
	Location           string    `json:"location"`
	Interests          []string  `json:"interests"`
}

func (d Donor) EntityID() int64 { return d.ID }

// Validate checks the shape of a donor decoded from the backend.
func (d Donor) Validate() error {
	switch {
	case d.ID <= 0:
		return invalid("donor", "id must be positive, got %d", d.ID)
	case strings.TrimSpace(d.Name) == "":
		return invalid("donor", "name is required")
	case !d.Type.Valid():
		return invalid("donor", "unknown type %q", d.Type)
	case d.TotalContributed < 0:
		return invalid("donor", "totalContributed must not be negative")
	case d.CampaignsSupported < 0:
		return invalid("donor", "campaignsSupported must not be negative")
	}
	return nil
}
