package store

import (
	"errors"
	"sync"
	"testing"

	"campaignhub/internal/domain"
)

func TestRootNotifiesWithFullTree(t *testing.T) {
	root := NewRoot(nil)
	var got []Tree
	unsubscribe := root.Subscribe(func(tree Tree) { got = append(got, tree) })

	root.DispatchCampaigns(SetAll(sampleCampaigns()))
	root.DispatchDonors(Add(domain.Donor{ID: 7, Name: "Sarah Johnson", Type: domain.DonorTypeIndividual}))

	if len(got) != 2 {
		t.Fatalf("notifications = %d, want 2", len(got))
	}
	last := got[1]
	if last.Campaigns.Len() != 3 || last.Donors.Len() != 1 {
		t.Fatalf("tree missing slices: %+v", last)
	}
	if last.Version != 2 || got[0].Version != 1 {
		t.Fatalf("versions = %d,%d want 1,2", got[0].Version, last.Version)
	}

	unsubscribe()
	unsubscribe()
	root.DispatchCommunities(SetLoading[domain.Community](true))
	if len(got) != 2 {
		t.Fatalf("listener called after unsubscribe")
	}
	if !root.State().Communities.Loading {
		t.Fatalf("community loading not applied")
	}
}

func TestRootIsolatesStores(t *testing.T) {
	root := NewRoot(nil)
	root.DispatchCommunities(SetAll([]domain.Community{{ID: 1, Name: "Nairobi East Community", Region: "Nairobi", NeedLevel: domain.NeedLevelCritical}}))

	root.DispatchCampaigns(ErrorMessage[domain.Campaign]("boom"))
	root.DispatchCampaigns(SetLoading[domain.Campaign](true))

	tree := root.State()
	if tree.Communities.Err != nil || tree.Communities.Loading || tree.Communities.Len() != 1 {
		t.Fatalf("campaign transition leaked into communities: %+v", tree.Communities)
	}
	if tree.Donors.Err != nil || tree.Donors.Loading {
		t.Fatalf("campaign transition leaked into donors: %+v", tree.Donors)
	}
	if tree.Campaigns.Error() != "boom" || !tree.Campaigns.Loading {
		t.Fatalf("campaign state = %+v", tree.Campaigns)
	}
}

func TestRootDispatchByName(t *testing.T) {
	root := NewRoot(nil)

	if _, err := root.Dispatch(SliceDonors, SetAll([]domain.Donor{{ID: 1, Name: "TechCorp", Type: domain.DonorTypeCorporate}})); err != nil {
		t.Fatalf("Dispatch donors: %v", err)
	}
	if root.State().Donors.Len() != 1 {
		t.Fatalf("donor not stored")
	}

	_, err := root.Dispatch(SliceCampaigns, SetAll([]domain.Donor{{ID: 2}}))
	if !errors.Is(err, ErrActionMismatch) {
		t.Fatalf("mismatched action error = %v, want ErrActionMismatch", err)
	}
	if _, err := root.Dispatch(Slice("pledges"), SetAll([]domain.Donor{})); err == nil {
		t.Fatalf("expected error for unknown slice")
	}
	if root.State().Version != 1 {
		t.Fatalf("rejected dispatch bumped version to %d", root.State().Version)
	}
}

func TestApplyRoutesByType(t *testing.T) {
	root := NewRoot(nil)
	Apply(root, Add(domain.Community{ID: 4, Name: "Kisumu Women Group", Region: "Kisumu", NeedLevel: domain.NeedLevelHigh}))
	Apply(root, Add(sampleCampaigns()[0]))

	tree := root.State()
	if tree.Communities.Len() != 1 || tree.Campaigns.Len() != 1 || tree.Donors.Len() != 0 {
		t.Fatalf("Apply routed incorrectly: %+v", tree)
	}
}

func TestListenerMayDispatch(t *testing.T) {
	root := NewRoot(nil)
	root.Subscribe(func(tree Tree) {
		if tree.Campaigns.Loading {
			root.DispatchCampaigns(SetLoading[domain.Campaign](false))
		}
	})

	root.DispatchCampaigns(SetLoading[domain.Campaign](true))

	if root.State().Campaigns.Loading {
		t.Fatalf("re-entrant dispatch not applied")
	}
	if root.State().Version != 2 {
		t.Fatalf("version = %d, want 2", root.State().Version)
	}
}

func TestConcurrentDispatchesAreSerialized(t *testing.T) {
	root := NewRoot(nil)
	const n = 50

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			root.DispatchDonors(Add(domain.Donor{ID: id, Name: "d", Type: domain.DonorTypeNGO}))
		}(int64(i))
	}
	wg.Wait()

	tree := root.State()
	if tree.Donors.Len() != n {
		t.Fatalf("donors = %d, want %d", tree.Donors.Len(), n)
	}
	if tree.Version != n {
		t.Fatalf("version = %d, want %d", tree.Version, n)
	}
}

func TestListenersSeeEveryVersionOnce(t *testing.T) {
	root := NewRoot(nil)
	const n = 50

	var mu sync.Mutex
	seen := make(map[uint64]int)
	var latest Tree
	root.Subscribe(func(tree Tree) {
		mu.Lock()
		defer mu.Unlock()
		seen[tree.Version]++
		if tree.Version > latest.Version {
			latest = tree
		}
	})

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			root.DispatchCommunities(Add(domain.Community{ID: id, Name: "c", NeedLevel: domain.NeedLevelHigh}))
		}(int64(i))
	}
	wg.Wait()

	for v := uint64(1); v <= n; v++ {
		if seen[v] != 1 {
			t.Fatalf("version %d delivered %d times", v, seen[v])
		}
	}
	if latest.Version != n || latest.Communities.Len() != n {
		t.Fatalf("latest tree = version %d with %d communities", latest.Version, latest.Communities.Len())
	}
}
