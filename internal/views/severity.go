package views

import "campaignhub/internal/domain"

// Severity is the badge color class attached to an enumerated label.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityDefault Severity = "default"
)

func CampaignSeverity(s domain.CampaignStatus) Severity {
	switch s {
	case domain.CampaignStatusActive:
		return SeveritySuccess
	case domain.CampaignStatusCompleted:
		return SeverityInfo
	case domain.CampaignStatusUpcoming:
		return SeverityWarning
	}
	return SeverityDefault
}

func NeedSeverity(n domain.NeedLevel) Severity {
	switch n {
	case domain.NeedLevelCritical:
		return SeverityError
	case domain.NeedLevelHigh:
		return SeverityWarning
	case domain.NeedLevelModerate:
		return SeveritySuccess
	}
	return SeverityDefault
}

func DonorTypeSeverity(t domain.DonorType) Severity {
	switch t {
	case domain.DonorTypeIndividual:
		return SeverityInfo
	case domain.DonorTypeCorporate:
		return SeveritySuccess
	case domain.DonorTypeNGO:
		return SeverityWarning
	}
	return SeverityDefault
}
