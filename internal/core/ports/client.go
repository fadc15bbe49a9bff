package ports

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// CreateClientInput carries all data needed to register a hiring company.
type CreateClientInput struct {
	Company       string
	ContactPerson string
	Email         string
}

// ClientRepository persists hiring companies.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// ClientService defines client use-cases.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}
