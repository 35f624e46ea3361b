package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

var _ ports.DecisionStore = (*DecisionStore)(nil)

const decisionColumns = `id, current_text, original_text, author, last_editor, last_edited_at,
	edit_count, created_at, topic, source_proposal_id`

// DecisionStore is a PostgreSQL ports.DecisionStore.
type DecisionStore struct {
	db *DB
}

// NewDecisionStore returns a store backed by db.
func NewDecisionStore(db *DB) *DecisionStore {
	return &DecisionStore{db: db}
}

func (s *DecisionStore) Create(ctx context.Context, d *decision.Decision) (*decision.Decision, error) {
	if d == nil {
		return nil, fmt.Errorf("create decision: %w", domain.ErrValidation)
	}

	row := s.db.Pool.QueryRow(ctx,
		`INSERT INTO decisions (current_text, original_text, author, last_editor, last_edited_at,
		                        edit_count, created_at, topic, source_proposal_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+decisionColumns,
		d.CurrentText, d.OriginalText, d.Author, d.LastEditor, d.LastEditedAt,
		d.EditCount, d.CreatedAt, d.Topic, d.SourceProposalID,
	)

	out, err := scanDecision(row)
	if err != nil {
		return nil, mapError("create decision", err)
	}
	return out, nil
}

func (s *DecisionStore) Get(ctx context.Context, id int64) (*decision.Decision, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+decisionColumns+` FROM decisions WHERE id = $1`, id)

	out, err := scanDecision(row)
	if err != nil {
		return nil, mapError(fmt.Sprintf("decision %d", id), err)
	}
	return out, nil
}

func (s *DecisionStore) GetBySourceProposal(ctx context.Context, proposalID int64) (*decision.Decision, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+decisionColumns+` FROM decisions WHERE source_proposal_id = $1`, proposalID)

	out, err := scanDecision(row)
	if err != nil {
		return nil, mapError(fmt.Sprintf("decision for proposal %d", proposalID), err)
	}
	return out, nil
}

func (s *DecisionStore) Update(ctx context.Context, id int64, fn ports.DecisionEdit) (*decision.Decision, error) {
	var out *decision.Decision

	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`SELECT `+decisionColumns+` FROM decisions WHERE id = $1 FOR UPDATE`, id)

		d, err := scanDecision(row)
		if err != nil {
			return mapError(fmt.Sprintf("decision %d", id), err)
		}

		entry, err := fn(d)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO decision_history (decision_id, text, editor, edited_at)
			 VALUES ($1, $2, $3, $4)`,
			id, entry.Text, entry.Editor, entry.EditedAt,
		); err != nil {
			return unavailable(fmt.Sprintf("append history for decision %d", id), err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE decisions
			 SET current_text = $2, last_editor = $3, last_edited_at = $4, edit_count = $5
			 WHERE id = $1`,
			id, d.CurrentText, d.LastEditor, d.LastEditedAt, d.EditCount,
		); err != nil {
			return unavailable(fmt.Sprintf("update decision %d", id), err)
		}

		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DecisionStore) History(ctx context.Context, id int64) ([]decision.HistoryEntry, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx,
		`SELECT id, decision_id, text, editor, edited_at
		 FROM decision_history
		 WHERE decision_id = $1
		 ORDER BY edited_at DESC, id DESC`, id)
	if err != nil {
		return nil, unavailable(fmt.Sprintf("history for decision %d", id), err)
	}
	defer rows.Close()

	out := make([]decision.HistoryEntry, 0)
	for rows.Next() {
		var h decision.HistoryEntry
		if err := rows.Scan(&h.ID, &h.DecisionID, &h.Text, &h.Editor, &h.EditedAt); err != nil {
			return nil, unavailable("scan history entry", err)
		}
		h.EditedAt = h.EditedAt.UTC()
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(fmt.Sprintf("history for decision %d", id), err)
	}
	return out, nil
}

func (s *DecisionStore) List(ctx context.Context, limit int) ([]decision.Decision, error) {
	if limit <= 0 {
		return s.query(ctx, "list decisions",
			`SELECT `+decisionColumns+` FROM decisions ORDER BY created_at DESC, id DESC`)
	}
	return s.query(ctx, "list decisions",
		`SELECT `+decisionColumns+` FROM decisions ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
}

func (s *DecisionStore) Search(ctx context.Context, keyword string) ([]decision.Decision, error) {
	return s.query(ctx, "search decisions",
		`SELECT `+decisionColumns+` FROM decisions
		 WHERE current_text ILIKE $1 ESCAPE '\' OR topic ILIKE $1 ESCAPE '\'
		 ORDER BY created_at DESC, id DESC`, "%"+escapeLike(keyword)+"%")
}

func (s *DecisionStore) ListBetween(ctx context.Context, start, end time.Time) ([]decision.Decision, error) {
	return s.query(ctx, "list decisions between",
		`SELECT `+decisionColumns+` FROM decisions
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC, id DESC`, start, end)
}

func (s *DecisionStore) query(ctx context.Context, op, sql string, args ...any) ([]decision.Decision, error) {
	rows, err := s.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer rows.Close()

	out := make([]decision.Decision, 0)
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, unavailable(op, err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(op, err)
	}
	return out, nil
}

func scanDecision(row pgx.Row) (*decision.Decision, error) {
	var d decision.Decision
	if err := row.Scan(
		&d.ID, &d.CurrentText, &d.OriginalText, &d.Author, &d.LastEditor, &d.LastEditedAt,
		&d.EditCount, &d.CreatedAt, &d.Topic, &d.SourceProposalID,
	); err != nil {
		return nil, err
	}
	d.CreatedAt = d.CreatedAt.UTC()
	if d.LastEditedAt != nil {
		t := d.LastEditedAt.UTC()
		d.LastEditedAt = &t
	}
	return &d, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so keyword matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
