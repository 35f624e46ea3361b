package postgres

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
)

// Integration tests share one database, so they do not run in parallel.

var base = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestProposalStore_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	s := NewProposalStore(db)
	ctx := context.Background()

	p := proposal.New("Use MongoDB", "pat", proposal.Policy{Threshold: 2, Timeout: time.Hour}, base)
	created, err := s.Create(ctx, &p)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create() did not assign an ID")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Text != "Use MongoDB" || got.Status != proposal.StatusPending || got.Threshold != 2 {
		t.Errorf("Get() = %+v, want stored pending proposal", got)
	}
	if !got.ExpiresAt.Equal(base.Add(time.Hour)) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, base.Add(time.Hour))
	}
	if got.Approvals == nil || len(got.Approvals) != 0 {
		t.Errorf("Approvals = %v, want empty", got.Approvals)
	}

	if _, err := s.Get(ctx, created.ID+100); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestProposalStore_UpdateRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	s := NewProposalStore(db)
	ctx := context.Background()

	p := proposal.New("Use X", "pat", proposal.Policy{Threshold: 2, Timeout: time.Hour}, base)
	created, err := s.Create(ctx, &p)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = s.Update(ctx, created.ID, func(p *proposal.Proposal) (bool, error) {
		p.Approvals = append(p.Approvals, "amy")
		return true, domain.ErrSelfVote
	})
	if !errors.Is(err, domain.ErrSelfVote) {
		t.Fatalf("Update() error = %v, want ErrSelfVote", err)
	}

	got, _ := s.Get(ctx, created.ID)
	if len(got.Approvals) != 0 {
		t.Errorf("Approvals = %v, want rollback to empty", got.Approvals)
	}

	if _, err := s.Update(ctx, created.ID+100, func(*proposal.Proposal) (bool, error) { return true, nil }); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestProposalStore_ConcurrentVotesSerialize(t *testing.T) {
	db := openTestDB(t)
	s := NewProposalStore(db)
	ctx := context.Background()

	p := proposal.New("Use X", "pat", proposal.Policy{Threshold: 100, Timeout: time.Hour}, base)
	created, err := s.Create(ctx, &p)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	voters := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, v := range voters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, created.ID, func(p *proposal.Proposal) (bool, error) {
				out, err := p.Cast(v, proposal.VoteApprove, false, base)
				return out.Changed(), err
			})
			if err != nil {
				t.Errorf("Update(%s) error = %v", v, err)
			}
		}()
	}
	wg.Wait()

	got, _ := s.Get(ctx, created.ID)
	if len(got.Approvals) != len(voters) {
		t.Errorf("len(Approvals) = %d, want %d (lost update)", len(got.Approvals), len(voters))
	}
}

func TestProposalStore_ListByStatus(t *testing.T) {
	db := openTestDB(t)
	s := NewProposalStore(db)
	ctx := context.Background()

	policy := proposal.Policy{Threshold: 1, Timeout: time.Hour}
	older := proposal.New("older", "pat", policy, base)
	newer := proposal.New("newer", "pat", policy, base.Add(time.Minute))
	done := proposal.New("done", "pat", policy, base)
	done.Status = proposal.StatusApproved

	for _, p := range []*proposal.Proposal{&older, &newer, &done} {
		if _, err := s.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := s.ListByStatus(ctx, proposal.StatusPending)
	if err != nil {
		t.Fatalf("ListByStatus() error = %v", err)
	}
	if len(got) != 2 || got[0].Text != "newer" || got[1].Text != "older" {
		t.Errorf("ListByStatus() = %+v, want [newer older]", got)
	}
}

func TestDecisionStore_UpdateAppendsHistory(t *testing.T) {
	db := openTestDB(t)
	s := NewDecisionStore(db)
	ctx := context.Background()

	d := decision.New("Use X", "pat", "storage", base)
	created, err := s.Create(ctx, &d)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	edit := func(text, editor string, at time.Time) func(*decision.Decision) (decision.HistoryEntry, error) {
		return func(d *decision.Decision) (decision.HistoryEntry, error) {
			return d.Edit(text, editor, at)
		}
	}

	if _, err := s.Update(ctx, created.ID, edit("Use Y", "alice", base.Add(time.Minute))); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, err := s.Update(ctx, created.ID, edit("Use Z", "bob", base.Add(2*time.Minute)))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.CurrentText != "Use Z" || updated.OriginalText != "Use X" || updated.EditCount != 2 {
		t.Errorf("Update() = %+v, want current Use Z, original Use X, 2 edits", updated)
	}
	if updated.LastEditedAt == nil || !updated.LastEditedAt.Equal(base.Add(2*time.Minute)) {
		t.Errorf("LastEditedAt = %v, want %v", updated.LastEditedAt, base.Add(2*time.Minute))
	}

	history, err := s.History(ctx, created.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	want := []struct{ text, editor string }{{"Use Y", "bob"}, {"Use X", "alice"}}
	if len(history) != len(want) {
		t.Fatalf("len(History) = %d, want %d", len(history), len(want))
	}
	for i, w := range want {
		if history[i].Text != w.text || history[i].Editor != w.editor {
			t.Errorf("History[%d] = %+v, want %s by %s", i, history[i], w.text, w.editor)
		}
	}
}

func TestDecisionStore_FailedEditAppendsNothing(t *testing.T) {
	db := openTestDB(t)
	s := NewDecisionStore(db)
	ctx := context.Background()

	d := decision.New("Use X", "pat", "", base)
	created, _ := s.Create(ctx, &d)

	_, err := s.Update(ctx, created.ID, func(d *decision.Decision) (decision.HistoryEntry, error) {
		return d.Edit("   ", "alice", base)
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Update() error = %v, want ErrValidation", err)
	}

	history, _ := s.History(ctx, created.ID)
	if len(history) != 0 {
		t.Errorf("len(History) = %d, want 0", len(history))
	}
	if _, err := s.History(ctx, created.ID+100); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("History(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDecisionStore_SourceProposalUnique(t *testing.T) {
	db := openTestDB(t)
	proposals := NewProposalStore(db)
	s := NewDecisionStore(db)
	ctx := context.Background()

	p := proposal.New("Use X", "pat", proposal.Policy{Threshold: 1, Timeout: time.Hour}, base)
	src, err := proposals.Create(ctx, &p)
	if err != nil {
		t.Fatalf("Create(proposal) error = %v", err)
	}

	d := decision.New("Use X", "pat", "", base)
	d.SourceProposalID = &src.ID
	first, err := s.Create(ctx, &d)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := s.Create(ctx, &d); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second Create() error = %v, want ErrConflict", err)
	}

	got, err := s.GetBySourceProposal(ctx, src.ID)
	if err != nil {
		t.Fatalf("GetBySourceProposal() error = %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("GetBySourceProposal() ID = %d, want %d", got.ID, first.ID)
	}
}

func TestDecisionStore_Queries(t *testing.T) {
	db := openTestDB(t)
	s := NewDecisionStore(db)
	ctx := context.Background()

	seed := []struct {
		text, topic string
		at          time.Time
	}{
		{"Use Postgres for storage", "storage", base},
		{"Adopt 100% test coverage", "quality", base.Add(time.Hour)},
		{"Ship weekly", "process", base.Add(25 * time.Hour)},
	}
	for _, sd := range seed {
		d := decision.New(sd.text, "pat", sd.topic, sd.at)
		if _, err := s.Create(ctx, &d); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	texts := func(ds []decision.Decision) []string {
		out := make([]string, len(ds))
		for i := range ds {
			out[i] = ds[i].CurrentText
		}
		return out
	}

	list, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if want := []string{"Ship weekly", "Adopt 100% test coverage"}; !slices.Equal(texts(list), want) {
		t.Errorf("List(2) = %v, want %v", texts(list), want)
	}

	found, _ := s.Search(ctx, "POSTGRES")
	if want := []string{"Use Postgres for storage"}; !slices.Equal(texts(found), want) {
		t.Errorf("Search(POSTGRES) = %v, want %v", texts(found), want)
	}

	byTopic, _ := s.Search(ctx, "process")
	if want := []string{"Ship weekly"}; !slices.Equal(texts(byTopic), want) {
		t.Errorf("Search(process) = %v, want %v", texts(byTopic), want)
	}

	literal, _ := s.Search(ctx, "0%")
	if want := []string{"Adopt 100% test coverage"}; !slices.Equal(texts(literal), want) {
		t.Errorf("Search(0%%) = %v, want %v", texts(literal), want)
	}

	day, _ := s.ListBetween(ctx, base, base.Add(24*time.Hour))
	if want := []string{"Adopt 100% test coverage", "Use Postgres for storage"}; !slices.Equal(texts(day), want) {
		t.Errorf("ListBetween() = %v, want %v", texts(day), want)
	}
}
