package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, resume_url, cover_letter, status, ai_parsed_data)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		app.UserID, app.JobID, app.ResumeURL, app.CoverLetter, app.Status, app.AIParsedData,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", classify(err, domain.ErrDuplicateApplication))
	}
	return app, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.resume_url, a.cover_letter, a.status,
		        a.ai_parsed_data, a.admin_notes, a.created_at, u.full_name, u.email
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications by job: %w", err)
	}
	defer rows.Close()

	apps := []domain.JobApplication{}
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.JobID, &a.ResumeURL, &a.CoverLetter, &a.Status,
			&a.AIParsedData, &a.AdminNotes, &a.CreatedAt, &a.ApplicantName, &a.ApplicantEmail,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
	rows, err := r.pool.Query(ctx, userApplicationQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications by user: %w", err)
	}
	defer rows.Close()

	apps := []domain.UserApplication{}
	for rows.Next() {
		a, err := scanUserApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) LatestByUser(ctx context.Context, userID int64) (*domain.UserApplication, error) {
	a, err := scanUserApplication(r.pool.QueryRow(ctx, userApplicationQuery+` LIMIT 1`, userID))
	if err != nil {
		return nil, notFound(err, domain.ErrApplicationNotFound)
	}
	return a, nil
}

const userApplicationQuery = `
	SELECT a.id, a.user_id, a.job_id, a.resume_url, a.cover_letter, a.status,
	       a.ai_parsed_data, a.admin_notes, a.created_at, j.title, j.department
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	WHERE a.user_id = $1
	ORDER BY a.created_at DESC, a.id DESC`

func scanUserApplication(row rowScanner) (*domain.UserApplication, error) {
	var a domain.UserApplication
	err := row.Scan(
		&a.ID, &a.UserID, &a.JobID, &a.ResumeURL, &a.CoverLetter, &a.Status,
		&a.AIParsedData, &a.AdminNotes, &a.CreatedAt, &a.JobTitle, &a.JobDepartment,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
