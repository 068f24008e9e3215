package store

import (
	"testing"

	"campaignhub/internal/domain"
)

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: 1, Title: "Period Products Distribution Drive", Community: "Nairobi East", Goal: 50000, Raised: 35000, Status: domain.CampaignStatusActive, TargetBeneficiaries: 500},
		{ID: 2, Title: "Healthcare Awareness Program", Community: "Kisumu", Goal: 30000, Raised: 30000, Status: domain.CampaignStatusCompleted, TargetBeneficiaries: 200},
		{ID: 3, Title: "School Infrastructure Support", Community: "Mombasa", Goal: 75000, Raised: 0, Status: domain.CampaignStatusUpcoming, TargetBeneficiaries: 1000},
	}
}

func ids[T domain.Entity](items []T) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.EntityID()
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInitialState(t *testing.T) {
	var s CampaignState
	if s.Len() != 0 || s.Loading || s.Err != nil {
		t.Fatalf("zero state = %+v, want empty/not loading/no error", s)
	}
	if s.Error() != "" {
		t.Fatalf("Error() = %q, want empty", s.Error())
	}
}

func TestSetAllReplacesCollectionOnly(t *testing.T) {
	msg := "stale"
	prev := CampaignState{Items: sampleCampaigns()[:1], Loading: true, Err: &msg}
	input := sampleCampaigns()[1:]

	next := Reduce(prev, SetAll(input))

	if got, want := ids(next.Items), []int64{2, 3}; !equalIDs(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if !next.Loading || next.Error() != "stale" {
		t.Fatalf("loading/error changed: %+v", next)
	}
	input[0].Title = "mutated by caller"
	if next.Items[0].Title == "mutated by caller" {
		t.Fatalf("SetAll must copy the input slice")
	}
	if prev.Len() != 1 || prev.Items[0].ID != 1 {
		t.Fatalf("previous state mutated: %+v", prev.Items)
	}
}

func TestAddAppendsAndPreservesOrder(t *testing.T) {
	prev := CampaignState{Items: sampleCampaigns()[:2]}
	dup := sampleCampaigns()[0]

	next := Reduce(prev, Add(dup))

	if got, want := ids(next.Items), []int64{1, 2, 1}; !equalIDs(got, want) {
		t.Fatalf("ids = %v, want %v (duplicates are not rejected)", got, want)
	}
	if prev.Len() != 2 {
		t.Fatalf("previous state grew to %d", prev.Len())
	}
}

func TestAddDoesNotShareBackingArray(t *testing.T) {
	base := make([]domain.Campaign, 1, 4)
	base[0] = sampleCampaigns()[0]
	prev := CampaignState{Items: base}

	a := Reduce(prev, Add(sampleCampaigns()[1]))
	b := Reduce(prev, Add(sampleCampaigns()[2]))

	if a.Items[1].ID != 2 || b.Items[1].ID != 3 {
		t.Fatalf("branches interfered: a=%v b=%v", ids(a.Items), ids(b.Items))
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.Campaign
		wantIDs []int64
		changed bool
	}{
		{
			name:    "known id replaced in place",
			item:    domain.Campaign{ID: 2, Title: "Renamed", Goal: 1, Status: domain.CampaignStatusActive},
			wantIDs: []int64{1, 2, 3},
			changed: true,
		},
		{
			name:    "unknown id is a no-op",
			item:    domain.Campaign{ID: 99, Title: "Ghost", Goal: 1, Status: domain.CampaignStatusActive},
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prev := CampaignState{Items: sampleCampaigns()}
			next := Reduce(prev, Update(tc.item))
			if got := ids(next.Items); !equalIDs(got, tc.wantIDs) {
				t.Fatalf("ids = %v, want %v", got, tc.wantIDs)
			}
			got, _ := next.Find(tc.item.ID)
			if tc.changed && got.Title != tc.item.Title {
				t.Fatalf("record not replaced: %+v", got)
			}
			if prev.Items[1].Title != "Healthcare Awareness Program" {
				t.Fatalf("previous state mutated: %+v", prev.Items[1])
			}
		})
	}
}

func TestRemove(t *testing.T) {
	prev := CampaignState{Items: sampleCampaigns()}

	next := Reduce(prev, Remove[domain.Campaign](2))
	if got, want := ids(next.Items), []int64{1, 3}; !equalIDs(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if prev.Len() != 3 {
		t.Fatalf("previous state mutated")
	}

	same := Reduce(next, Remove[domain.Campaign](42))
	if got, want := ids(same.Items), []int64{1, 3}; !equalIDs(got, want) {
		t.Fatalf("unknown id changed collection: %v", got)
	}
}

func TestLoadingAndErrorAreIndependent(t *testing.T) {
	s := CampaignState{Items: sampleCampaigns()}

	s = Reduce(s, SetLoading[domain.Campaign](true))
	if !s.Loading || s.Len() != 3 {
		t.Fatalf("SetLoading(true) = %+v", s)
	}
	s = Reduce(s, ErrorMessage[domain.Campaign]("network down"))
	if s.Error() != "network down" || !s.Loading || s.Len() != 3 {
		t.Fatalf("SetError = %+v", s)
	}
	s = Reduce(s, ClearError[domain.Campaign]())
	if s.Err != nil {
		t.Fatalf("ClearError left %q", s.Error())
	}
	s = Reduce(s, SetLoading[domain.Campaign](false))
	if s.Loading {
		t.Fatalf("SetLoading(false) left loading set")
	}
}

func TestSetErrorCopiesMessage(t *testing.T) {
	msg := "first"
	s := Reduce(CampaignState{}, SetError[domain.Campaign](&msg))
	msg = "changed"
	if s.Error() != "first" {
		t.Fatalf("Error() = %q, want first", s.Error())
	}
}

func TestUnknownKindIsIdentity(t *testing.T) {
	prev := CampaignState{Items: sampleCampaigns()}
	next := Reduce(prev, Action[domain.Campaign]{Kind: Kind(99)})
	if !equalIDs(ids(next.Items), ids(prev.Items)) || next.Loading != prev.Loading {
		t.Fatalf("unknown kind changed state: %+v", next)
	}
}

func TestFundingScenarioUpdates(t *testing.T) {
	s := CampaignState{Items: []domain.Campaign{{ID: 1, Title: "Drive", Goal: 50000, Raised: 35000, Status: domain.CampaignStatusActive}}}

	s = Reduce(s, Update(domain.Campaign{ID: 1, Title: "Drive", Goal: 50000, Raised: 50000, Status: domain.CampaignStatusActive}))
	if got, _ := s.Find(1); got.Raised != 50000 {
		t.Fatalf("raised = %v, want 50000", got.Raised)
	}
	if got, _ := s.Find(1); got.Status != domain.CampaignStatusActive {
		t.Fatalf("status derived from funding: %q", got.Status)
	}

	s = Reduce(s, Update(domain.Campaign{ID: 2, Title: "Other", Goal: 10, Status: domain.CampaignStatusActive}))
	if s.Len() != 1 {
		t.Fatalf("update for unknown id inserted: len=%d", s.Len())
	}
}

func TestKindString(t *testing.T) {
	if KindSetAll.String() != "SET_ALL" || KindSetError.String() != "SET_ERROR" {
		t.Fatalf("unexpected names: %s %s", KindSetAll, KindSetError)
	}
	if Kind(42).String() != "Kind(42)" {
		t.Fatalf("unknown kind = %s", Kind(42))
	}
}
