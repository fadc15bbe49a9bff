package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
	"github.com/talentbase/recruiting-api/internal/pkg/metrics"
)

// Extracted resume text is bounded twice: once for the in-memory working copy
// and again, tighter, for the portion embedded in the generator prompt.
const (
	maxResumeTextLen = 100_000
	maxPromptTextLen = 15_000
)

const jobAdPrompt = `You are an expert recruiting copywriter. Write a polished job advertisement from the rough notes below.

Return your result as a single JSON object in exactly this format:

{
  "title": string,
  "department": string,
  "description": string,
  "required_skills": [string],
  "location": string,
  "employment_type": string,
  "salary_range": string,
  "status": string
}

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.

Role title: %s

Rough notes:
%s`

const resumePrompt = `You are an expert resume analyst. Extract structured data from the resume text below.

Return your result as a single JSON object in exactly this format:

{
  "summary": string,
  "skills": [string],
  "experience": [{"job_title": string, "company": string, "duration": string, "responsibilities": [string]}],
  "education": [string],
  "certifications": [string]
}

Base all output only on the provided text. Do not invent data.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.

Resume text:
%s`

// AssistService implements the two AI-backed conveniences. The generator is
// nil when no API key is configured; both operations then fail with
// domain.ErrGeneratorUnavailable instead of crashing.
type AssistService struct {
	generator ports.TextGenerator
	reader    ports.ResumeReader
	logger    zerolog.Logger
}

func NewAssistService(generator ports.TextGenerator, reader ports.ResumeReader, logger zerolog.Logger) *AssistService {
	return &AssistService{generator: generator, reader: reader, logger: logger}
}

func (s *AssistService) GenerateJobAd(ctx context.Context, input ports.JobAdInput) (*ports.JobAd, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.MissingField("description")
	}
	if s.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	raw, err := s.generator.Generate(ctx, fmt.Sprintf(jobAdPrompt, input.Title, input.Description))
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("job_ad", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneratorUnavailable, err)
	}

	obj, stage := parseStructured(raw)
	metrics.AIRequestsTotal.WithLabelValues("job_ad", stage.String()).Inc()
	if stage == stageDefaulted {
		s.logger.Warn().Str("kind", "job_ad").Msg("generator output not parseable, default-filling")
	}

	ad := &ports.JobAd{
		Title:          stringField(obj, "title", input.Title),
		Department:     stringField(obj, "department", ""),
		Description:    stringField(obj, "description", input.Description),
		RequiredSkills: listField(obj, "required_skills"),
		Location:       stringField(obj, "location", ""),
		EmploymentType: stringField(obj, "employment_type", ""),
		SalaryRange:    stringField(obj, "salary_range", ""),
		Status:         stringField(obj, "status", domain.JobStatusOpen),
	}
	return ad, nil
}

func (s *AssistService) ExtractResume(ctx context.Context, upload ports.ResumeUpload) (*ports.ResumeProfile, error) {
	if len(upload.Data) == 0 {
		return nil, domain.MissingField("file")
	}
	if !isPDF(upload) {
		return nil, domain.ErrUnsupportedMedia
	}
	if s.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	text, err := s.reader.ExtractText(upload.Data)
	if err != nil {
		return nil, domain.Invalid("could not extract text from the uploaded PDF")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Invalid("uploaded PDF contains no extractable text")
	}
	text = truncateText(text, maxResumeTextLen)

	embedded := truncateText(text, maxPromptTextLen)

	raw, err := s.generator.Generate(ctx, fmt.Sprintf(resumePrompt, embedded))
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("resume", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneratorUnavailable, err)
	}

	obj, stage := parseStructured(raw)
	metrics.AIRequestsTotal.WithLabelValues("resume", stage.String()).Inc()
	if stage == stageDefaulted {
		s.logger.Warn().Str("kind", "resume").Msg("generator output not parseable, default-filling")
	}

	return resumeProfileFrom(obj), nil
}

// resumeProfileFrom default-fills every field of the structured record
// independently, regardless of which parse stage produced obj.
func resumeProfileFrom(obj map[string]any) *ports.ResumeProfile {
	profile := &ports.ResumeProfile{
		Summary:        stringField(obj, "summary", ""),
		Skills:         listField(obj, "skills"),
		Education:      listField(obj, "education"),
		Certifications: listField(obj, "certifications"),
		Experience:     []ports.ExperienceEntry{},
	}
	for _, entry := range objectListField(obj, "experience") {
		profile.Experience = append(profile.Experience, ports.ExperienceEntry{
			JobTitle:         stringField(entry, "job_title", ""),
			Company:          stringField(entry, "company", ""),
			Duration:         stringField(entry, "duration", ""),
			Responsibilities: listField(entry, "responsibilities"),
		})
	}
	return profile
}

// truncateText caps s at max bytes, backing off to a rune boundary so the
// result stays valid UTF-8 when the cut would land inside a multi-byte rune.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// isPDF accepts a declared PDF media type or the %PDF magic header.
func isPDF(upload ports.ResumeUpload) bool {
	if strings.Contains(strings.ToLower(upload.ContentType), "application/pdf") {
		return true
	}
	return bytes.HasPrefix(upload.Data, []byte("%PDF"))
}
