package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

var _ ports.ProposalStore = (*ProposalStore)(nil)

const proposalColumns = `id, text, proposer, created_at, approvals, rejections, status, threshold, expires_at`

// ProposalStore is a PostgreSQL ports.ProposalStore.
type ProposalStore struct {
	db *DB
}

// NewProposalStore returns a store backed by db.
func NewProposalStore(db *DB) *ProposalStore {
	return &ProposalStore{db: db}
}

func (s *ProposalStore) Create(ctx context.Context, p *proposal.Proposal) (*proposal.Proposal, error) {
	if p == nil {
		return nil, fmt.Errorf("create proposal: %w", domain.ErrValidation)
	}

	row := s.db.Pool.QueryRow(ctx,
		`INSERT INTO proposals (text, proposer, created_at, approvals, rejections, status, threshold, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+proposalColumns,
		p.Text, p.Proposer, p.CreatedAt, nonNil(p.Approvals), nonNil(p.Rejections),
		p.Status.String(), p.Threshold, p.ExpiresAt,
	)

	out, err := scanProposal(row)
	if err != nil {
		return nil, mapError("create proposal", err)
	}
	return out, nil
}

func (s *ProposalStore) Get(ctx context.Context, id int64) (*proposal.Proposal, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE id = $1`, id)

	out, err := scanProposal(row)
	if err != nil {
		return nil, mapError(fmt.Sprintf("proposal %d", id), err)
	}
	return out, nil
}

func (s *ProposalStore) Update(ctx context.Context, id int64, fn ports.ProposalMutation) (*proposal.Proposal, error) {
	var out *proposal.Proposal

	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`SELECT `+proposalColumns+` FROM proposals WHERE id = $1 FOR UPDATE`, id)

		p, err := scanProposal(row)
		if err != nil {
			return mapError(fmt.Sprintf("proposal %d", id), err)
		}

		changed, err := fn(p)
		if err != nil {
			return err
		}
		if changed {
			if _, err := tx.Exec(ctx,
				`UPDATE proposals
				 SET approvals = $2, rejections = $3, status = $4
				 WHERE id = $1`,
				id, nonNil(p.Approvals), nonNil(p.Rejections), p.Status.String(),
			); err != nil {
				return unavailable(fmt.Sprintf("update proposal %d", id), err)
			}
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProposalStore) ListByStatus(ctx context.Context, status proposal.Status) ([]proposal.Proposal, error) {
	rows, err := s.db.Pool.Query(ctx,
		`SELECT `+proposalColumns+` FROM proposals
		 WHERE status = $1
		 ORDER BY created_at DESC, id DESC`, status.String())
	if err != nil {
		return nil, unavailable("list proposals", err)
	}
	defer rows.Close()

	out := make([]proposal.Proposal, 0)
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, unavailable("scan proposal", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list proposals", err)
	}
	return out, nil
}

func scanProposal(row pgx.Row) (*proposal.Proposal, error) {
	var (
		p      proposal.Proposal
		status string
	)
	if err := row.Scan(
		&p.ID, &p.Text, &p.Proposer, &p.CreatedAt,
		&p.Approvals, &p.Rejections, &status, &p.Threshold, &p.ExpiresAt,
	); err != nil {
		return nil, err
	}
	p.Status = proposal.Status(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.ExpiresAt = p.ExpiresAt.UTC()
	return &p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
