package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
	"github.com/talentbase/recruiting-api/internal/pkg/metrics"
)

// Rendered profiles are capped to the most recent experience entries and a
// few responsibility bullets each.
const (
	maxProfileExperience       = 3
	maxProfileResponsibilities = 3
)

// DocumentService implements the two export conveniences.
type DocumentService struct {
	users   ports.UserRepository
	apps    ports.ApplicationRepository
	jobs    ports.JobRepository
	profile ports.ProfileRenderer
	feed    ports.FeedRenderer
	logger  zerolog.Logger
}

func NewDocumentService(
	users ports.UserRepository,
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	profile ports.ProfileRenderer,
	feed ports.FeedRenderer,
	logger zerolog.Logger,
) *DocumentService {
	return &DocumentService{users: users, apps: apps, jobs: jobs, profile: profile, feed: feed, logger: logger}
}

// CandidateProfilePDF renders an anonymized profile for the candidate: no name
// or email, only the zero-padded CND reference plus the latest application's
// status, job title and AI-extracted data. A candidate without applications
// still renders, with placeholders.
func (s *DocumentService) CandidateProfilePDF(ctx context.Context, userID int64) ([]byte, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := ports.CandidateProfile{
		Reference: fmt.Sprintf("CND-00%d", user.ID),
	}

	latest, err := s.apps.LatestByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrApplicationNotFound) {
		return nil, err
	}
	if latest != nil {
		profile.Status = latest.Status
		profile.JobTitle = latest.JobTitle
		fillParsedData(&profile, latest.AIParsedData)
	}

	out, err := s.profile.Render(profile)
	if err != nil {
		return nil, err
	}

	metrics.DocumentsRenderedTotal.WithLabelValues("pdf").Inc()
	s.logger.Info().Int64("user_id", user.ID).Msg("candidate profile exported")
	return out, nil
}

// JobFeedXML renders the posting as the portal-specific XML document.
func (s *DocumentService) JobFeedXML(ctx context.Context, jobID int64, portal string) ([]byte, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out, err := s.feed.Render(job, portal)
	if err != nil {
		return nil, err
	}

	metrics.DocumentsRenderedTotal.WithLabelValues("xml").Inc()
	s.logger.Info().Int64("job_id", job.ID).Str("portal", portal).Msg("job feed exported")
	return out, nil
}

// fillParsedData merges the stored AI-extracted record into the profile,
// capping experience entries and their responsibility bullets. Unparseable or
// absent data leaves the placeholders in place.
func fillParsedData(profile *ports.CandidateProfile, data json.RawMessage) {
	if len(data) == 0 {
		return
	}
	var parsed ports.ResumeProfile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return
	}

	profile.Summary = parsed.Summary
	profile.Skills = parsed.Skills

	entries := parsed.Experience
	if len(entries) > maxProfileExperience {
		entries = entries[:maxProfileExperience]
	}
	for _, e := range entries {
		if len(e.Responsibilities) > maxProfileResponsibilities {
			e.Responsibilities = e.Responsibilities[:maxProfileResponsibilities]
		}
		profile.Experience = append(profile.Experience, e)
	}
}
