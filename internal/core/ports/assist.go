package ports

import "context"

// TextGenerator is the delegated generative service. Implementations return
// free-form text; callers must parse it defensively since the upstream output
// format is not guaranteed.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// JobAdInput carries the raw material for ad generation.
type JobAdInput struct {
	Title       string
	Description string
}

// JobAd is the structured posting produced by ad generation. Every field is
// defaulted independently when the generator output is missing or malformed.
type JobAd struct {
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type"`
	SalaryRange    string   `json:"salary_range"`
	Status         string   `json:"status"`
}

// ResumeUpload is a candidate resume file received for extraction.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExperienceEntry is one position in a parsed resume.
type ExperienceEntry struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// ResumeProfile is the structured record extracted from a resume.
type ResumeProfile struct {
	Summary        string            `json:"summary"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []string          `json:"education"`
	Certifications []string          `json:"certifications"`
}

// ResumeReader extracts plain text from an uploaded PDF document.
type ResumeReader interface {
	ExtractText(data []byte) (string, error)
}

// AssistService defines the two AI-backed conveniences.
type AssistService interface {
	GenerateJobAd(ctx context.Context, input JobAdInput) (*JobAd, error)
	ExtractResume(ctx context.Context, upload ResumeUpload) (*ResumeProfile, error)
}
