package ports

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// CandidateProfile is the anonymized view rendered into the exported PDF.
// It deliberately carries no name or email; Reference is the only identifier.
type CandidateProfile struct {
	Reference  string
	Status     string
	JobTitle   string
	Summary    string
	Skills     []string
	Experience []ExperienceEntry
}

// ProfileRenderer turns an anonymized profile into a binary PDF document.
type ProfileRenderer interface {
	Render(profile CandidateProfile) ([]byte, error)
}

// FeedRenderer produces a portal-specific XML document for a posting.
// Unknown portal keys yield domain.ErrUnsupportedPortal.
type FeedRenderer interface {
	Render(job *domain.Job, portal string) ([]byte, error)
}

// DocumentService defines the two export conveniences.
type DocumentService interface {
	CandidateProfilePDF(ctx context.Context, userID int64) ([]byte, error)
	JobFeedXML(ctx context.Context, jobID int64, portal string) ([]byte, error)
}
