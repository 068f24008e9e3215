package store

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"campaignhub/internal/domain"
	"campaignhub/internal/infra"
)

// Slice names a sub-store of the root tree.
type Slice string

const (
	SliceCampaigns   Slice = "campaigns"
	SliceCommunities Slice = "communities"
	SliceDonors      Slice = "donors"
)

// ErrActionMismatch is returned by Dispatch when the action's record type does
// not belong to the named slice.
var ErrActionMismatch = errors.New("store: action does not match slice")

// Tree is the composed state handed to subscribers. Version increases by one
// for every applied transition.
type Tree struct {
	Campaigns   CampaignState  `json:"campaigns"`
	Communities CommunityState `json:"communities"`
	Donors      DonorState     `json:"donors"`
	Version     uint64         `json:"version"`
}

// Listener receives the full tree after every transition.
type Listener func(Tree)

// Root composes the three stores. Transitions are applied one at a time;
// listeners are called after the transition is committed, outside the lock,
// so a listener may dispatch again. Listeners running concurrently for
// different dispatches can use Tree.Version to drop stale trees.
type Root struct {
	mu        sync.Mutex
	tree      Tree
	listeners map[uint64]Listener
	nextID    uint64
	logger    *infra.Logger
}

// NewRoot returns a root with every store in its initial state.
func NewRoot(logger *infra.Logger) *Root {
	return &Root{listeners: make(map[uint64]Listener), logger: infra.OrNop(logger)}
}

// State returns the current tree.
func (r *Root) State() Tree {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree
}

// Subscribe registers fn and returns a function that removes it.
//
// fn runs on the dispatching goroutine after the lock is released. When
// several goroutines dispatch at once, fn may be called concurrently and may
// see version N+1 before version N. A listener that keeps the latest tree must
// compare Tree.Version and ignore anything older than what it already holds.
func (r *Root) Subscribe(fn Listener) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.listeners, id)
			r.mu.Unlock()
		})
	}
}

// Dispatch applies action to the named slice. The action must be an
// Action[domain.Campaign], Action[domain.Community] or Action[domain.Donor]
// matching slice.
func (r *Root) Dispatch(slice Slice, action any) (Tree, error) {
	switch slice {
	case SliceCampaigns:
		if a, ok := action.(Action[domain.Campaign]); ok {
			return r.DispatchCampaigns(a), nil
		}
	case SliceCommunities:
		if a, ok := action.(Action[domain.Community]); ok {
			return r.DispatchCommunities(a), nil
		}
	case SliceDonors:
		if a, ok := action.(Action[domain.Donor]); ok {
			return r.DispatchDonors(a), nil
		}
	default:
		return r.State(), fmt.Errorf("store: unknown slice %q", slice)
	}
	return r.State(), fmt.Errorf("%w: %s got %T", ErrActionMismatch, slice, action)
}

// DispatchCampaigns applies a to the campaign store only.
func (r *Root) DispatchCampaigns(a Action[domain.Campaign]) Tree {
	return r.apply(SliceCampaigns, a.Kind, func(t *Tree) { t.Campaigns = Reduce(t.Campaigns, a) })
}

// DispatchCommunities applies a to the community store only.
func (r *Root) DispatchCommunities(a Action[domain.Community]) Tree {
	return r.apply(SliceCommunities, a.Kind, func(t *Tree) { t.Communities = Reduce(t.Communities, a) })
}

// DispatchDonors applies a to the donor store only.
func (r *Root) DispatchDonors(a Action[domain.Donor]) Tree {
	return r.apply(SliceDonors, a.Kind, func(t *Tree) { t.Donors = Reduce(t.Donors, a) })
}

func (r *Root) apply(slice Slice, kind Kind, fn func(*Tree)) Tree {
	r.mu.Lock()
	next := r.tree
	fn(&next)
	next.Version = r.tree.Version + 1
	r.tree = next
	listeners := make([]Listener, 0, len(r.listeners))
	for _, id := range slices.Sorted(maps.Keys(r.listeners)) {
		listeners = append(listeners, r.listeners[id])
	}
	r.mu.Unlock()

	r.logger.Debug().
		Str("slice", string(slice)).
		Str("action", kind.String()).
		Uint64("version", next.Version).
		Msg("store: transition applied")

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Apply dispatches a to the slice that holds T.
func Apply[T domain.Entity](r *Root, a Action[T]) Tree {
	switch act := any(a).(type) {
	case Action[domain.Campaign]:
		return r.DispatchCampaigns(act)
	case Action[domain.Community]:
		return r.DispatchCommunities(act)
	case Action[domain.Donor]:
		return r.DispatchDonors(act)
	}
	panic(fmt.Sprintf("store: no slice holds %T", a))
}
