package ports

import (
	"context"
	"encoding/json"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// CreateApplicationInput carries all data needed to submit an application.
type CreateApplicationInput struct {
	UserID       int64
	JobID        int64
	ResumeURL    string
	CoverLetter  string
	AIParsedData json.RawMessage
}

// ApplicationRepository persists applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error)
	// LatestByUser returns the candidate's most recent application joined with
	// job display fields, or domain.ErrApplicationNotFound when none exists.
	LatestByUser(ctx context.Context, userID int64) (*domain.UserApplication, error)
}

// ApplicationService defines application use-cases.
type ApplicationService interface {
	Create(ctx context.Context, input CreateApplicationInput) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error)
}
