package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

const jobColumns = `id, title, department, description, requirements, status, created_by, client_id, created_at, updated_at`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, department, description, requirements, status, created_by, client_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		job.Title, job.Department, job.Description, job.Requirements, job.Status, job.CreatedBy, job.ClientID,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", classify(err, nil))
	}
	return job, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := scanJob(r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrJobNotFound)
	}
	return job, nil
}

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// Update is a single-statement partial update: NULL arguments keep the stored
// value via COALESCE, so absent request fields never overwrite prior data.
func (r *JobRepository) Update(ctx context.Context, id int64, patch ports.UpdateJobPatch) (*domain.Job, error) {
	job, err := scanJob(r.pool.QueryRow(ctx,
		`UPDATE jobs SET
			title        = COALESCE($2, title),
			department   = COALESCE($3, department),
			description  = COALESCE($4, description),
			requirements = COALESCE($5, requirements),
			status       = COALESCE($6, status),
			client_id    = COALESCE($7, client_id),
			updated_at   = now()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id, patch.Title, patch.Department, patch.Description, patch.Requirements, patch.Status, patch.ClientID))
	if err != nil {
		return nil, notFound(classify(err, nil), domain.ErrJobNotFound)
	}
	return job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Department, &job.Description, &job.Requirements,
		&job.Status, &job.CreatedBy, &job.ClientID, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
