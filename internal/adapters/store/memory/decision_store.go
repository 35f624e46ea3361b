package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

var _ ports.DecisionStore = (*DecisionStore)(nil)

type decisionEntry struct {
	mu      sync.Mutex
	val     decision.Decision
	history []decision.HistoryEntry // oldest first
}

// DecisionStore is an in-memory ports.DecisionStore.
type DecisionStore struct {
	mu            sync.RWMutex
	nextID        int64
	nextHistoryID int64
	items         map[int64]*decisionEntry
	bySource      map[int64]int64
}

// NewDecisionStore returns an empty store whose first ID is 1.
func NewDecisionStore() *DecisionStore {
	return &DecisionStore{
		items:    make(map[int64]*decisionEntry),
		bySource: make(map[int64]int64),
	}
}

func (s *DecisionStore) Create(_ context.Context, d *decision.Decision) (*decision.Decision, error) {
	if d == nil {
		return nil, fmt.Errorf("create decision: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d.SourceProposalID != nil {
		if existing, ok := s.bySource[*d.SourceProposalID]; ok {
			return nil, fmt.Errorf("proposal %d already materialized as decision %d: %w",
				*d.SourceProposalID, existing, domain.ErrConflict)
		}
	}

	s.nextID++
	stored := d.Clone()
	stored.ID = s.nextID
	s.items[stored.ID] = &decisionEntry{val: stored}
	if stored.SourceProposalID != nil {
		s.bySource[*stored.SourceProposalID] = stored.ID
	}

	out := stored.Clone()
	return &out, nil
}

func (s *DecisionStore) Get(_ context.Context, id int64) (*decision.Decision, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("decision %d: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	out := e.val.Clone()
	e.mu.Unlock()
	return &out, nil
}

func (s *DecisionStore) GetBySourceProposal(ctx context.Context, proposalID int64) (*decision.Decision, error) {
	s.mu.RLock()
	id, ok := s.bySource[proposalID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("decision for proposal %d: %w", proposalID, domain.ErrNotFound)
	}
	return s.Get(ctx, id)
}

func (s *DecisionStore) Update(ctx context.Context, id int64, fn ports.DecisionEdit) (*decision.Decision, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("decision %d: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	work := e.val.Clone()
	entry, err := fn(&work)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.nextHistoryID++
	entry.ID = s.nextHistoryID
	s.mu.Unlock()

	entry.DecisionID = id
	e.history = append(e.history, entry)
	e.val = work

	out := e.val.Clone()
	return &out, nil
}

func (s *DecisionStore) History(_ context.Context, id int64) ([]decision.HistoryEntry, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("decision %d: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	out := slices.Clone(e.history)
	e.mu.Unlock()

	if out == nil {
		return []decision.HistoryEntry{}, nil
	}
	slices.Reverse(out)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EditedAt.After(out[j].EditedAt)
	})
	return out, nil
}

func (s *DecisionStore) List(_ context.Context, limit int) ([]decision.Decision, error) {
	out := s.filter(func(*decision.Decision) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *DecisionStore) Search(_ context.Context, keyword string) ([]decision.Decision, error) {
	return s.filter(func(d *decision.Decision) bool { return d.Matches(keyword) }), nil
}

func (s *DecisionStore) ListBetween(_ context.Context, start, end time.Time) ([]decision.Decision, error) {
	return s.filter(func(d *decision.Decision) bool { return d.CreatedBetween(start, end) }), nil
}

// filter returns clones of matching decisions, newest first.
func (s *DecisionStore) filter(keep func(*decision.Decision) bool) []decision.Decision {
	s.mu.RLock()
	entries := make([]*decisionEntry, 0, len(s.items))
	for _, e := range s.items {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]decision.Decision, 0)
	for _, e := range entries {
		e.mu.Lock()
		if keep(&e.val) {
			out = append(out, e.val.Clone())
		}
		e.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *DecisionStore) entry(id int64) *decisionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id]
}
