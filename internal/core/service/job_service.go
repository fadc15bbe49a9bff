package service

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// JobService implements posting use-cases.
type JobService struct {
	repo ports.JobRepository
}

func NewJobService(repo ports.JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Title == "" {
		return nil, domain.MissingField("title")
	}
	if input.Department == "" {
		return nil, domain.MissingField("department")
	}

	// Defaults apply on creation only; updates never re-fill falsy values.
	status := input.Status
	if status == "" {
		status = domain.JobStatusOpen
	}
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = domain.JobDefaultCreatedBy
	}

	return s.repo.Create(ctx, &domain.Job{
		Title:        input.Title,
		Department:   input.Department,
		Description:  input.Description,
		Requirements: StringList(input.Requirements),
		Status:       status,
		CreatedBy:    createdBy,
		ClientID:     input.ClientID,
	})
}

func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}

// Update applies a partial patch: fields absent from the request keep their
// stored values; explicitly supplied values, falsy or not, are written.
func (s *JobService) Update(ctx context.Context, id int64, input ports.UpdateJobInput) (*domain.Job, error) {
	patch := ports.UpdateJobPatch{
		Title:       input.Title,
		Department:  input.Department,
		Description: input.Description,
		Status:      input.Status,
		ClientID:    input.ClientID,
	}
	if input.Requirements != nil {
		reqs := StringList(input.Requirements)
		patch.Requirements = &reqs
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
