package ports

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// CreateJobInput carries all data needed to create a posting. Requirements is
// the raw payload value: either a list of strings or a single comma-delimited
// string; the service normalizes it.
type CreateJobInput struct {
	Title        string
	Department   string
	Description  string
	Requirements any
	Status       string
	CreatedBy    string
	ClientID     *int64
}

// UpdateJobInput is a partial update: nil fields keep the stored value, while
// present-but-falsy values (empty strings, empty lists) are written as given.
type UpdateJobInput struct {
	Title        *string
	Department   *string
	Description  *string
	Requirements any
	Status       *string
	ClientID     *int64
}

// JobRepository persists postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, id int64, patch UpdateJobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}

// UpdateJobPatch is the normalized form handed to the repository: the
// Requirements union has already been resolved to a concrete list (or nil
// when the field was absent).
type UpdateJobPatch struct {
	Title        *string
	Department   *string
	Description  *string
	Requirements *[]string
	Status       *string
	ClientID     *int64
}

// JobService defines posting use-cases.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, id int64, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}
