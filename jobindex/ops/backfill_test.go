package ops

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eqhq/jobindex/jobindex/model"
)

type fakeStore struct {
	mu       sync.Mutex
	desc     map[int64]string
	skills   map[int64][]model.SkillRef
	failIDs  map[int64]bool
	fetches  int
	updates  int
	inFlight atomic.Int64
	maxSeen  atomic.Int64
	delay    time.Duration
	fetchErr error
}

func newFakeStore(n int) *fakeStore {
	s := &fakeStore{
		desc:    make(map[int64]string),
		skills:  make(map[int64][]model.SkillRef),
		failIDs: make(map[int64]bool),
	}
	for i := 1; i <= n; i++ {
		s.desc[int64(i)] = fmt.Sprintf(`[{"heading":"Req","content":["skill-%d"]}]`, i)
	}
	return s
}

func (s *fakeStore) FetchUnset(_ context.Context, afterID int64, limit int) ([]BackfillRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	var ids []int64
	for id := range s.desc {
		if _, set := s.skills[id]; !set && id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]BackfillRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, BackfillRecord{ID: id, Description: []byte(s.desc[id])})
	}
	return out, nil
}

func (s *fakeStore) UpdateSkills(_ context.Context, id int64, skills []model.SkillRef) error {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		m := s.maxSeen.Load()
		if n <= m || s.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIDs[id] {
		return errors.New("boom")
	}
	s.skills[id] = skills
	s.updates++
	return nil
}

type echoMatcher struct{}

func (echoMatcher) Match(text string) []model.SkillRef {
	return []model.SkillRef{{Name: text, Slug: "x"}}
}

func TestRunBackfillProcessesAllBatches(t *testing.T) {
	s := newFakeStore(250)
	stats, err := RunBackfill(context.Background(), s, echoMatcher{}, BackfillOptions{Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("RunBackfill: %v", err)
	}
	if stats.Batches != 3 || stats.Fetched != 250 || stats.Updated != 250 || stats.Failed != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.LastID != 250 {
		t.Fatalf("last id = %d", stats.LastID)
	}
	if len(s.skills) != 250 {
		t.Fatalf("updated %d postings", len(s.skills))
	}
	if got := s.skills[7][0].Name; got != "Req skill-7" {
		t.Fatalf("matcher saw %q", got)
	}
}

func TestRunBackfillSecondPassIsNoop(t *testing.T) {
	s := newFakeStore(30)
	opts := BackfillOptions{BatchSize: 10, Logger: zerolog.Nop()}
	if _, err := RunBackfill(context.Background(), s, echoMatcher{}, opts); err != nil {
		t.Fatal(err)
	}
	before := s.updates
	stats, err := RunBackfill(context.Background(), s, echoMatcher{}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Updated != 0 || s.updates != before {
		t.Fatalf("second pass updated %d postings", stats.Updated)
	}
}

func TestRunBackfillRecordFailureDoesNotAbort(t *testing.T) {
	s := newFakeStore(25)
	s.failIDs[3] = true
	s.failIDs[17] = true
	opts := BackfillOptions{BatchSize: 10, Concurrency: 4, Logger: zerolog.Nop()}

	stats, err := RunBackfill(context.Background(), s, echoMatcher{}, opts)
	if err != nil {
		t.Fatalf("RunBackfill: %v", err)
	}
	if stats.Failed != 2 || stats.Updated != 23 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	// A rerun picks up only what is still missing.
	delete(s.failIDs, 3)
	delete(s.failIDs, 17)
	stats, err = RunBackfill(context.Background(), s, echoMatcher{}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Fetched != 2 || stats.Updated != 2 {
		t.Fatalf("rerun stats: %+v", stats)
	}
}

func TestRunBackfillBoundsConcurrency(t *testing.T) {
	s := newFakeStore(40)
	s.delay = 5 * time.Millisecond
	opts := BackfillOptions{BatchSize: 40, Concurrency: 3, Logger: zerolog.Nop()}
	if _, err := RunBackfill(context.Background(), s, echoMatcher{}, opts); err != nil {
		t.Fatal(err)
	}
	if m := s.maxSeen.Load(); m > 3 {
		t.Fatalf("saw %d concurrent updates, limit 3", m)
	}
}

func TestRunBackfillEmptyDescription(t *testing.T) {
	s := newFakeStore(0)
	s.desc[1] = "{not json"
	s.desc[2] = "[]"
	stats, err := RunBackfill(context.Background(), s, echoMatcher{}, BackfillOptions{Logger: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Empty != 2 || stats.Updated != 2 {
		t.Fatalf("stats: %+v", stats)
	}
	if got := s.skills[1]; got == nil || len(got) != 0 {
		t.Fatalf("malformed description should store an empty set, got %v", got)
	}
}

func TestRunBackfillFetchErrorAborts(t *testing.T) {
	s := newFakeStore(5)
	s.fetchErr = errors.New("db down")
	_, err := RunBackfill(context.Background(), s, echoMatcher{}, BackfillOptions{Logger: zerolog.Nop()})
	if err == nil || !errors.Is(err, s.fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestRunBackfillResumesFromCheckpoint(t *testing.T) {
	s := newFakeStore(20)
	cp := NewMemoryCheckpoint()
	_ = cp.Save(context.Background(), 15)

	stats, err := RunBackfill(context.Background(), s, echoMatcher{}, BackfillOptions{Checkpoints: cp, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Updated != 5 {
		t.Fatalf("expected only ids 16..20, stats %+v", stats)
	}
	if id, _ := cp.Load(context.Background()); id != 0 {
		t.Fatalf("checkpoint not cleared: %d", id)
	}
}

func TestRunBackfillCancelled(t *testing.T) {
	s := newFakeStore(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBackfill(ctx, s, echoMatcher{}, BackfillOptions{Logger: zerolog.Nop()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
