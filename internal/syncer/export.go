package syncer

import (
	"encoding/json"
	"fmt"
	"time"

	"campaignhub/internal/store"
	"campaignhub/internal/views"
	"campaignhub/pkg/zip"
)

// ExportName is the suggested download name for a snapshot taken at t.
func ExportName(t time.Time) string {
	return "campaignhub-" + t.UTC().Format("20060102T150405Z") + ".zip"
}

// Export archives a snapshot of tree: one JSON file per store plus the local
// summary. Loading flags and errors are not exported.
func Export(tree store.Tree, at time.Time) ([]byte, error) {
	parts := []struct {
		name string
		v    any
	}{
		{"campaigns.json", nonNil(tree.Campaigns.Items)},
		{"communities.json", nonNil(tree.Communities.Items)},
		{"donors.json", nonNil(tree.Donors.Items)},
		{"summary.json", views.Summarize(tree)},
	}

	entries := make([]zip.Entry, 0, len(parts))
	for _, p := range parts {
		data, err := json.MarshalIndent(p.v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("syncer: export %s: %w", p.name, err)
		}
		entries = append(entries, zip.Entry{Filename: p.name, Data: data})
	}
	return zip.Archive(entries, at)
}

// nonNil makes empty stores export as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
