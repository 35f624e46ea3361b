package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

var _ ports.ProposalStore = (*ProposalStore)(nil)

type proposalEntry struct {
	mu  sync.Mutex
	val proposal.Proposal
}

// ProposalStore is an in-memory ports.ProposalStore.
type ProposalStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*proposalEntry
}

// NewProposalStore returns an empty store whose first ID is 1.
func NewProposalStore() *ProposalStore {
	return &ProposalStore{items: make(map[int64]*proposalEntry)}
}

func (s *ProposalStore) Create(_ context.Context, p *proposal.Proposal) (*proposal.Proposal, error) {
	if p == nil {
		return nil, fmt.Errorf("create proposal: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := p.Clone()
	stored.ID = s.nextID
	s.items[stored.ID] = &proposalEntry{val: stored}

	out := stored.Clone()
	return &out, nil
}

func (s *ProposalStore) Get(_ context.Context, id int64) (*proposal.Proposal, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	out := e.val.Clone()
	e.mu.Unlock()
	return &out, nil
}

func (s *ProposalStore) Update(ctx context.Context, id int64, fn ports.ProposalMutation) (*proposal.Proposal, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// fn works on a copy so a failed mutation leaves nothing behind.
	work := e.val.Clone()
	changed, err := fn(&work)
	if err != nil {
		return nil, err
	}
	if changed {
		e.val = work
	}

	out := e.val.Clone()
	return &out, nil
}

func (s *ProposalStore) ListByStatus(_ context.Context, status proposal.Status) ([]proposal.Proposal, error) {
	s.mu.RLock()
	entries := make([]*proposalEntry, 0, len(s.items))
	for _, e := range s.items {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]proposal.Proposal, 0)
	for _, e := range entries {
		e.mu.Lock()
		if e.val.Status == status {
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
	return out, nil
}

func (s *ProposalStore) entry(id int64) *proposalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id]
}
