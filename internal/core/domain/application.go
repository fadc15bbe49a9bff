package domain

import (
	"encoding/json"
	"time"
)

const ApplicationStatusPending = "Pending"

// Application links a candidate to a job. At most one application may exist
// per (user_id, job_id) pair; the store enforces this with a unique constraint.
type Application struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	JobID        int64           `json:"job_id"`
	ResumeURL    string          `json:"resume_url,omitempty"`
	CoverLetter  string          `json:"cover_letter,omitempty"`
	Status       string          `json:"status"`
	AIParsedData json.RawMessage `json:"ai_parsed_data,omitempty"`
	AdminNotes   string          `json:"admin_notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// JobApplication is an application joined with the candidate's display fields,
// as returned by the job-scoped listing.
type JobApplication struct {
	Application
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}

// UserApplication is an application joined with the job's display fields,
// as returned by the candidate-scoped listing.
type UserApplication struct {
	Application
	JobTitle      string `json:"job_title"`
	JobDepartment string `json:"job_department"`
}
