package domain

import "time"

// Client is a hiring company. JobsCount is derived at read time: it counts
// jobs that either reference the client by id or whose department name equals
// the company name (legacy name-based fallback, see the clients repository).
type Client struct {
	ID            int64     `json:"id"`
	Company       string    `json:"company"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	JobsCount     int64     `json:"jobs_count"`
	CreatedAt     time.Time `json:"created_at"`
}
