package candidateinfra

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `
	id, role, skills, experience, seniority, cantons,
	salary_min, salary_max, availability, entry_date, entry_date_display,
	highlight, functional_expertise, education, work_permit, languages,
	profile_bio, summary, previous_roles
`

// List retrieves the full anonymized pool, newest entry first.
func (r *PostgresCandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE published = TRUE
		ORDER BY entry_date DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}

	return candidates, rows.Err()
}

// GetByID retrieves a candidate by ID.
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE id = $1 AND published = TRUE
	`

	rows, err := r.db.QueryxContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, candidate.ErrCandidateNotFound()
	}

	return scanCandidate(rows)
}

// Exists checks if a candidate exists by ID.
func (r *PostgresCandidateRepository) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1 AND published = TRUE)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// scanCandidate maps one row into the domain shape, applying the same
// defaulting rules as the wire-boundary Normalize so absent columns never leak
// as nils or zero-value surprises.
func scanCandidate(rows *sqlx.Rows) (*candidate.Candidate, error) {
	var (
		c                  candidate.Candidate
		skills             pq.StringArray
		cantons            pq.StringArray
		expertise          pq.StringArray
		languages          pq.StringArray
		salaryMin          sql.NullInt64
		salaryMax          sql.NullInt64
		seniority          sql.NullString
		experience         sql.NullString
		availability       sql.NullString
		entryDate          sql.NullTime
		entryDateDisplay   sql.NullString
		highlight          sql.NullString
		education          sql.NullString
		workPermit         sql.NullString
		profileBio         sql.NullString
		summary            sql.NullString
		previousRolesJSON  []byte
	)

	err := rows.Scan(
		&c.ID,
		&c.Role,
		&skills,
		&experience,
		&seniority,
		&cantons,
		&salaryMin,
		&salaryMax,
		&availability,
		&entryDate,
		&entryDateDisplay,
		&highlight,
		&expertise,
		&education,
		&workPermit,
		&languages,
		&profileBio,
		&summary,
		&previousRolesJSON,
	)
	if err != nil {
		return nil, err
	}

	c.Skills = []string(skills)
	if c.Skills == nil {
		c.Skills = []string{}
	}
	c.FunctionalExpertise = []string(expertise)
	if c.FunctionalExpertise == nil {
		c.FunctionalExpertise = []string{}
	}
	c.Languages = []string(languages)
	if c.Languages == nil {
		c.Languages = []string{}
	}

	c.Cantons = make([]kernel.Canton, 0, len(cantons))
	for _, code := range cantons {
		c.Cantons = append(c.Cantons, kernel.Canton(code))
	}

	if salaryMin.Valid && salaryMin.Int64 > 0 {
		c.Salary.Min = int(salaryMin.Int64)
	}
	if salaryMax.Valid && salaryMax.Int64 > 0 {
		c.Salary.Max = int(salaryMax.Int64)
	}

	c.Experience = experience.String
	c.Availability = availability.String
	c.Highlight = highlight.String
	c.Education = education.String
	c.ProfileBio = profileBio.String
	c.Summary = summary.String
	c.WorkPermit = kernel.WorkPermit(workPermit.String)

	c.Seniority = kernel.Seniority(seniority.String)
	if !c.Seniority.IsKnown() || seniority.String == "" {
		c.Seniority = kernel.SeniorityNotSpecified
	}

	if entryDate.Valid {
		c.EntryDate = entryDate.Time
	}
	c.EntryDateDisplay = entryDateDisplay.String
	if c.EntryDateDisplay == "" && !c.EntryDate.IsZero() {
		c.EntryDateDisplay = c.EntryDate.Format("02.01.2006")
	}

	c.PreviousRoles = []candidate.PreviousRole{}
	if len(previousRolesJSON) > 0 {
		// Malformed history JSON degrades to an empty list; one bad record
		// must not break the whole pool.
		_ = json.Unmarshal(previousRolesJSON, &c.PreviousRoles)
	}

	return &c, nil
}
