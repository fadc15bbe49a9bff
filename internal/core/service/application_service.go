package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
	"github.com/talentbase/recruiting-api/internal/pkg/metrics"
)

// ApplicationService implements application use-cases.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, logger: logger}
}

func (s *ApplicationService) Create(ctx context.Context, input ports.CreateApplicationInput) (*domain.Application, error) {
	if input.UserID <= 0 {
		return nil, domain.MissingField("user_id")
	}
	if input.JobID <= 0 {
		return nil, domain.MissingField("job_id")
	}

	app, err := s.repo.Create(ctx, &domain.Application{
		UserID:       input.UserID,
		JobID:        input.JobID,
		ResumeURL:    input.ResumeURL,
		CoverLetter:  input.CoverLetter,
		Status:       domain.ApplicationStatusPending,
		AIParsedData: input.AIParsedData,
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	s.logger.Info().
		Int64("user_id", app.UserID).
		Int64("job_id", app.JobID).
		Msg("application created")

	return app, nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	return s.repo.ListByJob(ctx, jobID)
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
	return s.repo.ListByUser(ctx, userID)
}
