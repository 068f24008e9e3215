// Package views derives read-only presentations from store snapshots:
// search filtering, funding progress, badge severities and totals. Every
// function is pure and leaves its inputs untouched.
package views

import (
	"strings"

	"golang.org/x/text/cases"

	"campaignhub/internal/domain"
)

// SearchCampaigns keeps campaigns whose title or community contains query,
// ignoring case.
func SearchCampaigns(query string, items []domain.Campaign) []domain.Campaign {
	return search(query, items, func(c domain.Campaign) []string {
		return []string{c.Title, c.Community}
	})
}

// SearchCommunities keeps communities whose name or region contains query.
func SearchCommunities(query string, items []domain.Community) []domain.Community {
	return search(query, items, func(c domain.Community) []string {
		return []string{c.Name, c.Region}
	})
}

// SearchDonors keeps donors whose name or location contains query.
func SearchDonors(query string, items []domain.Donor) []domain.Donor {
	return search(query, items, func(d domain.Donor) []string {
		return []string{d.Name, d.Location}
	})
}

// search returns items unchanged for a blank query. Matches keep their
// relative order.
func search[T any](query string, items []T, fields func(T) []string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	// A Caser carries state, so each call folds with its own.
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(fold.String(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
