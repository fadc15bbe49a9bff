package domain

import "time"

// Job lifecycle defaults applied on creation only.
const (
	JobStatusOpen       = "Open"
	JobDefaultCreatedBy = "Admin"
)

// Job is a posting managed by admins and consumed by candidates and external
// portals. Requirements keep their input order.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Description  string    `json:"description,omitempty"`
	Requirements []string  `json:"requirements"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"created_by"`
	ClientID     *int64    `json:"client_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
