package app_test

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/store/memory"
	"github.com/jsamuelsen11/decisionnote/internal/app"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
)

var testStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeClock is a manually advanced clock safe for concurrent reads.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: testStart} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func defaultPolicy() proposal.Policy {
	return proposal.Policy{Threshold: 2, Timeout: time.Hour}
}

type fixture struct {
	clock     *fakeClock
	proposals *memory.ProposalStore
	decisions *memory.DecisionStore
	ledger    *app.DecisionLedger
	engine    *app.VotingEngine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := newFakeClock()
	f := &fixture{
		clock:     clock,
		proposals: memory.NewProposalStore(),
		decisions: memory.NewDecisionStore(),
	}
	f.ledger = app.NewDecisionLedger(f.decisions, discardLogger(), app.WithClock(clock.Now))
	f.engine = app.NewVotingEngine(f.proposals, f.ledger, discardLogger(), app.WithClock(clock.Now))
	return f
}
