package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, ok, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("empty log: BestScore() = (%d, %v), want (0, false)", best, ok)
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty log: Stats() = %+v, want zero value", st)
	}

	rounds, err := store.TopRounds(5)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("empty log: got %d rounds", len(rounds))
	}
}

func TestStoreRecord(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record(Round{Player: "alice", Score: 40, CaughtRecyclables: 5, CaughtTrash: 2, MissedRecyclables: 10, Frames: 1200})
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if id == "" {
		t.Fatal("Record() should assign an ID")
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}

	r := rounds[0]
	if r.ID != id {
		t.Errorf("ID = %q, want %q", r.ID, id)
	}
	if r.Player != "alice" || r.Score != 40 || r.CaughtRecyclables != 5 || r.CaughtTrash != 2 ||
		r.MissedRecyclables != 10 || r.Frames != 1200 {
		t.Errorf("round fields not preserved: %+v", r)
	}
	if r.FinishedAt.IsZero() {
		t.Error("FinishedAt should be filled in")
	}
}

func TestStoreRecordKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record(Round{ID: "fixed-id", Player: "bob", Score: 10})
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("Record() = %q, want fixed-id", id)
	}

	if _, err := store.Record(Round{ID: "fixed-id", Player: "bob", Score: 20}); err == nil {
		t.Error("recording a duplicate ID should fail")
	}
}

func TestStoreBestAndTop(t *testing.T) {
	store := openTestStore(t)

	base := time.Unix(1_700_000_000, 0)
	scores := []int{30, -15, 120, 60, 120}
	for i, s := range scores {
		if _, err := store.Record(Round{Player: "p", Score: s, FinishedAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("Record(%d) failed: %v", s, err)
		}
	}

	best, ok, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if !ok || best != 120 {
		t.Errorf("BestScore() = (%d, %v), want (120, true)", best, ok)
	}

	top, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	want := []int{120, 120, 60}
	if len(top) != len(want) {
		t.Fatalf("TopRounds(3) returned %d rounds", len(top))
	}
	for i, s := range want {
		if top[i].Score != s {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, s)
		}
	}
	// Equal scores: the earlier round ranks first
	if !top[0].FinishedAt.Before(top[1].FinishedAt) {
		t.Error("tied scores should be ordered by finish time")
	}
}

func TestStoreRecentOrder(t *testing.T) {
	store := openTestStore(t)

	base := time.Unix(1_700_000_000, 0)
	for i := 0; i < 4; i++ {
		if _, err := store.Record(Round{Player: "p", Score: i * 10, FinishedAt: base.Add(time.Duration(i) * time.Second)}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRounds(2) returned %d rounds", len(recent))
	}
	if recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("recent scores = %d, %d; want 30, 20", recent[0].Score, recent[1].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	rounds := []Round{
		{Player: "a", Score: 50, CaughtRecyclables: 6, CaughtTrash: 2, MissedRecyclables: 10},
		{Player: "a", Score: -10, CaughtRecyclables: 0, CaughtTrash: 2, MissedRecyclables: 10},
	}
	for _, r := range rounds {
		if _, err := store.Record(r); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 2 {
		t.Errorf("Rounds = %d, want 2", st.Rounds)
	}
	if st.BestScore != 50 {
		t.Errorf("BestScore = %d, want 50", st.BestScore)
	}
	if st.AverageScore != 20 {
		t.Errorf("AverageScore = %v, want 20", st.AverageScore)
	}
	if st.TotalCaught != 6 {
		t.Errorf("TotalCaught = %d, want 6", st.TotalCaught)
	}
	if st.TotalMissed != 20 {
		t.Errorf("TotalMissed = %d, want 20", st.TotalMissed)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.Record(Round{Player: "p", Score: 99}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if _, ok, _ := b.BestScore(); ok {
		t.Error("a second in-memory store should not see rounds of the first")
	}
}
