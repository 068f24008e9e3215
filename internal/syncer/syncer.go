// Package syncer moves data between the backend gateway and the client-side
// stores. Every exchange ends in store transitions: refreshes toggle the
// loading flag and record the outcome, mutations apply the record the backend
// confirmed. Responses are applied in the order they arrive; a slow earlier
// request can overwrite the result of a faster later one.
package syncer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"campaignhub/internal/domain"
	"campaignhub/internal/gateway"
	"campaignhub/internal/infra"
	"campaignhub/internal/store"
)

// Backend is the remote collection for one entity type.
type Backend[T domain.Entity] interface {
	List(ctx context.Context, opts gateway.ListOptions) ([]T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id int64, payload T) (T, error)
}

// Deleter removes a record on the backend.
type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

type CampaignBackend interface {
	Backend[domain.Campaign]
	Deleter
}

type CommunityBackend interface {
	Backend[domain.Community]
	Deleter
}

// Backends bundles the collections a Syncer drives.
type Backends struct {
	Campaigns   CampaignBackend
	Communities CommunityBackend
	Donors      Backend[domain.Donor]
}

// FromClient wires the gateway's resource groups.
func FromClient(c *gateway.Client) Backends {
	return Backends{
		Campaigns:   c.Campaigns(),
		Communities: c.Communities(),
		Donors:      c.Donors(),
	}
}

// Syncer runs gateway calls and dispatches their outcome into a Root.
type Syncer struct {
	root     *store.Root
	backends Backends
	logger   *infra.Logger
	page     gateway.ListOptions
}

// New returns a Syncer. A nil logger discards output.
func New(root *store.Root, backends Backends, logger *infra.Logger) *Syncer {
	return &Syncer{root: root, backends: backends, logger: infra.OrNop(logger)}
}

// DefaultPageLimit matches the backend's own default page size.
const DefaultPageLimit = 100

// maxPages bounds a refresh against a backend that ignores skip.
const maxPages = 1000

// WithPage sets where refreshes start (Skip) and how many records each
// request asks for (Limit). A refresh keeps requesting pages until one comes
// back short, so Limit is a page size, not a cap on the collection.
func (s *Syncer) WithPage(opts gateway.ListOptions) *Syncer {
	s.page = opts
	return s
}

func (s *Syncer) Root() *store.Root { return s.root }

func (s *Syncer) RefreshCampaigns(ctx context.Context) error {
	return refresh(ctx, s, store.SliceCampaigns, s.backends.Campaigns)
}

func (s *Syncer) RefreshCommunities(ctx context.Context) error {
	return refresh(ctx, s, store.SliceCommunities, s.backends.Communities)
}

func (s *Syncer) RefreshDonors(ctx context.Context) error {
	return refresh(ctx, s, store.SliceDonors, s.backends.Donors)
}

// RefreshAll refreshes the three stores concurrently. Each refresh runs to
// completion even when another fails; the first error is returned.
func (s *Syncer) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.RefreshCampaigns(ctx) })
	g.Go(func() error { return s.RefreshCommunities(ctx) })
	g.Go(func() error { return s.RefreshDonors(ctx) })
	return g.Wait()
}

func (s *Syncer) CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	return create(ctx, s, store.SliceCampaigns, s.backends.Campaigns, c)
}

func (s *Syncer) CreateCommunity(ctx context.Context, c domain.Community) (domain.Community, error) {
	return create(ctx, s, store.SliceCommunities, s.backends.Communities, c)
}

func (s *Syncer) CreateDonor(ctx context.Context, d domain.Donor) (domain.Donor, error) {
	return create(ctx, s, store.SliceDonors, s.backends.Donors, d)
}

func (s *Syncer) UpdateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	return update(ctx, s, store.SliceCampaigns, s.backends.Campaigns, c)
}

func (s *Syncer) UpdateCommunity(ctx context.Context, c domain.Community) (domain.Community, error) {
	return update(ctx, s, store.SliceCommunities, s.backends.Communities, c)
}

func (s *Syncer) UpdateDonor(ctx context.Context, d domain.Donor) (domain.Donor, error) {
	return update(ctx, s, store.SliceDonors, s.backends.Donors, d)
}

func (s *Syncer) DeleteCampaign(ctx context.Context, id int64) error {
	return remove[domain.Campaign](ctx, s, store.SliceCampaigns, s.backends.Campaigns, id)
}

func (s *Syncer) DeleteCommunity(ctx context.Context, id int64) error {
	return remove[domain.Community](ctx, s, store.SliceCommunities, s.backends.Communities, id)
}

func refresh[T domain.Entity](ctx context.Context, s *Syncer, slice store.Slice, b Backend[T]) error {
	store.Apply(s.root, store.SetLoading[T](true))
	defer store.Apply(s.root, store.SetLoading[T](false))

	items, err := listAll(ctx, s, slice, b)
	if err != nil {
		s.fail(slice, "refresh", err)
		store.Apply(s.root, store.ErrorMessage[T](gateway.Message(err)))
		return fmt.Errorf("syncer: refresh %s: %w", slice, err)
	}
	store.Apply(s.root, store.SetAll(items))
	store.Apply(s.root, store.ClearError[T]())
	s.logger.Debug().Str("slice", string(slice)).Int("count", len(items)).Msg("syncer: refreshed")
	return nil
}

// listAll concatenates pages so SetAll replaces the collection with every
// record, not just the first page.
func listAll[T domain.Entity](ctx context.Context, s *Syncer, slice store.Slice, b Backend[T]) ([]T, error) {
	opts := s.page
	if opts.Limit <= 0 {
		opts.Limit = DefaultPageLimit
	}
	var items []T
	for page := 0; ; page++ {
		batch, err := b.List(ctx, opts)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
		if len(batch) < opts.Limit {
			break
		}
		if len(batch) > opts.Limit {
			s.logger.Warn().Str("slice", string(slice)).Int("limit", opts.Limit).Int("got", len(batch)).
				Msg("syncer: backend ignored page limit")
			break
		}
		if page+1 >= maxPages {
			return nil, fmt.Errorf("more than %d pages of %d", maxPages, opts.Limit)
		}
		opts.Skip += opts.Limit
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// create adds the record only once the backend has assigned its id.
func create[T domain.Entity](ctx context.Context, s *Syncer, slice store.Slice, b Backend[T], payload T) (T, error) {
	created, err := b.Create(ctx, payload)
	if err != nil {
		s.fail(slice, "create", err)
		store.Apply(s.root, store.ErrorMessage[T](gateway.Message(err)))
		var zero T
		return zero, fmt.Errorf("syncer: create %s: %w", slice, err)
	}
	store.Apply(s.root, store.Add(created))
	store.Apply(s.root, store.ClearError[T]())
	return created, nil
}

func update[T domain.Entity](ctx context.Context, s *Syncer, slice store.Slice, b Backend[T], payload T) (T, error) {
	updated, err := b.Update(ctx, payload.EntityID(), payload)
	if err != nil {
		s.fail(slice, "update", err)
		store.Apply(s.root, store.ErrorMessage[T](gateway.Message(err)))
		var zero T
		return zero, fmt.Errorf("syncer: update %s %d: %w", slice, payload.EntityID(), err)
	}
	store.Apply(s.root, store.Update(updated))
	store.Apply(s.root, store.ClearError[T]())
	return updated, nil
}

func remove[T domain.Entity](ctx context.Context, s *Syncer, slice store.Slice, d Deleter, id int64) error {
	if err := d.Delete(ctx, id); err != nil {
		s.fail(slice, "delete", err)
		store.Apply(s.root, store.ErrorMessage[T](gateway.Message(err)))
		return fmt.Errorf("syncer: delete %s %d: %w", slice, id, err)
	}
	store.Apply(s.root, store.Remove[T](id))
	store.Apply(s.root, store.ClearError[T]())
	return nil
}

func (s *Syncer) fail(slice store.Slice, op string, err error) {
	s.logger.Warn().Err(err).Str("slice", string(slice)).Str("op", op).Msg("syncer: backend call failed")
}
