package introrequestinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresIntroRequestRepository struct {
	db *sqlx.DB
}

func NewPostgresIntroRequestRepository(db *sqlx.DB) introrequest.Repository {
	return &PostgresIntroRequestRepository{db: db}
}

// Create inserts a new request. A partial unique index on
// (company_id, candidate_id) WHERE status <> 'CANCELLED' backs the
// one-active-request rule at the storage level; the service checks first and
// this is the backstop for races.
func (r *PostgresIntroRequestRepository) Create(ctx context.Context, req *introrequest.IntroRequest) error {
	query := `
		INSERT INTO intro_requests (
			id, company_id, candidate_id, status, message,
			status_changed_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.CompanyID,
		req.CandidateID,
		req.Status,
		req.Message,
		req.StatusChangedAt,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return introrequest.ErrAlreadyRequested().WithCause(err)
		}
		return err
	}

	return nil
}

// Update persists status changes.
func (r *PostgresIntroRequestRepository) Update(ctx context.Context, req *introrequest.IntroRequest) error {
	query := `
		UPDATE intro_requests
		SET status = $2, message = $3, status_changed_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.Status,
		req.Message,
		req.StatusChangedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return introrequest.ErrRequestNotFound()
	}

	return nil
}

// GetByID retrieves a request by ID.
func (r *PostgresIntroRequestRepository) GetByID(ctx context.Context, id kernel.IntroRequestID) (*introrequest.IntroRequest, error) {
	query := `
		SELECT id, company_id, candidate_id, status, message,
		       status_changed_at, created_at, updated_at
		FROM intro_requests
		WHERE id = $1
	`

	var req introrequest.IntroRequest
	err := r.db.GetContext(ctx, &req, query, id)
	if err == sql.ErrNoRows {
		return nil, introrequest.ErrRequestNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// ListByCompany retrieves every request a company has made, newest first.
func (r *PostgresIntroRequestRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]introrequest.IntroRequest, error) {
	query := `
		SELECT id, company_id, candidate_id, status, message,
		       status_changed_at, created_at, updated_at
		FROM intro_requests
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	requests := make([]introrequest.IntroRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, companyID); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetActive retrieves the active (non-cancelled) request for a pair.
func (r *PostgresIntroRequestRepository) GetActive(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) (*introrequest.IntroRequest, error) {
	query := `
		SELECT id, company_id, candidate_id, status, message,
		       status_changed_at, created_at, updated_at
		FROM intro_requests
		WHERE company_id = $1 AND candidate_id = $2 AND status <> $3
	`

	var req introrequest.IntroRequest
	err := r.db.GetContext(ctx, &req, query, companyID, candidateID, introrequest.StatusCancelled)
	if err == sql.ErrNoRows {
		return nil, introrequest.ErrRequestNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// isUniqueViolation reports whether err is a Postgres 23505 unique violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
