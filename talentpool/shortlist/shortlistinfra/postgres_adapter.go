package shortlistinfra

import (
	"context"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist"
	"github.com/jmoiron/sqlx"
)

type PostgresShortlistRepository struct {
	db *sqlx.DB
}

func NewPostgresShortlistRepository(db *sqlx.DB) shortlist.Repository {
	return &PostgresShortlistRepository{db: db}
}

// ListByCompany retrieves every entry of a company's shortlist.
func (r *PostgresShortlistRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]shortlist.Entry, error) {
	query := `
		SELECT id, company_id, candidate_id, created_at
		FROM shortlists
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	entries := make([]shortlist.Entry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, companyID); err != nil {
		return nil, err
	}

	return entries, nil
}

// Add inserts an entry; the unique (company_id, candidate_id) pair makes a
// repeated add a no-op instead of an error.
func (r *PostgresShortlistRepository) Add(ctx context.Context, entry *shortlist.Entry) error {
	query := `
		INSERT INTO shortlists (id, company_id, candidate_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, candidate_id) DO NOTHING
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.CompanyID,
		entry.CandidateID,
		entry.CreatedAt,
	)

	return err
}

// Remove deletes an entry and reports whether one existed.
func (r *PostgresShortlistRepository) Remove(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) (bool, error) {
	query := `DELETE FROM shortlists WHERE company_id = $1 AND candidate_id = $2`

	result, err := r.db.ExecContext(ctx, query, companyID, candidateID)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
