// Package store keeps the client-side collections for campaigns, communities
// and donors. Each collection is a value-typed state machine: transitions
// return a new State and never write to a slice another holder can see.
package store

import "campaignhub/internal/domain"

// State is the collection plus the store-wide loading flag and last error.
// Any combination of fields is valid; a refresh in flight keeps the stale
// items with Loading set.
type State[T domain.Entity] struct {
	Items   []T     `json:"items"`
	Loading bool    `json:"loading"`
	Err     *string `json:"error"`
}

// Len returns the number of records held.
func (s State[T]) Len() int { return len(s.Items) }

// Find returns the record with the given id.
func (s State[T]) Find(id int64) (T, bool) {
	if i := s.index(id); i >= 0 {
		return s.Items[i], true
	}
	var zero T
	return zero, false
}

// Error returns the last error message, or "" when none is set.
func (s State[T]) Error() string {
	if s.Err == nil {
		return ""
	}
	return *s.Err
}

func (s State[T]) index(id int64) int {
	for i, item := range s.Items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

type (
	CampaignState  = State[domain.Campaign]
	CommunityState = State[domain.Community]
	DonorState     = State[domain.Donor]
)
