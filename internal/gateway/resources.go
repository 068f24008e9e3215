package gateway

import (
	"context"
	"fmt"
	"net/http"

	"campaignhub/internal/domain"
)

type record interface {
	domain.Entity
	Validate() error
}

// resource implements the shared CRUD verbs for one entity collection.
type resource[T record] struct {
	c    *Client
	path string
}

// List fetches the collection. The backend returns a bare array.
func (r resource[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, http.MethodGet, r.path, opts.values(), nil, &items); err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, &DecodeError{Path: r.path, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get fetches one record by id.
func (r resource[T]) Get(ctx context.Context, id int64) (T, error) {
	return r.one(ctx, http.MethodGet, r.itemPath(id), nil)
}

// Create posts payload and returns the record as stored by the backend,
// including its assigned id.
func (r resource[T]) Create(ctx context.Context, payload T) (T, error) {
	return r.one(ctx, http.MethodPost, r.path, payload)
}

// Update replaces the record with id by payload and returns the stored record.
func (r resource[T]) Update(ctx context.Context, id int64, payload T) (T, error) {
	return r.one(ctx, http.MethodPut, r.itemPath(id), payload)
}

func (r resource[T]) remove(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

func (r resource[T]) one(ctx context.Context, method, path string, in any) (T, error) {
	var out T
	if err := r.c.do(ctx, method, path, nil, in, &out); err != nil {
		var zero T
		return zero, err
	}
	if err := out.Validate(); err != nil {
		var zero T
		return zero, &DecodeError{Path: path, Err: err}
	}
	return out, nil
}

func (r resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// CampaignAPI groups the /campaigns operations.
type CampaignAPI struct {
	resource[domain.Campaign]
}

// Delete removes the campaign on the backend.
func (a *CampaignAPI) Delete(ctx context.Context, id int64) error {
	return a.remove(ctx, id)
}

// CommunityAPI groups the /communities operations.
type CommunityAPI struct {
	resource[domain.Community]
}

// Delete removes the community on the backend.
func (a *CommunityAPI) Delete(ctx context.Context, id int64) error {
	return a.remove(ctx, id)
}

// DonorAPI groups the /donors operations. The backend has no donor delete.
type DonorAPI struct {
	resource[domain.Donor]
}
