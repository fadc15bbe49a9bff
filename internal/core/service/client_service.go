package service

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// ClientService implements hiring-company use-cases.
type ClientService struct {
	repo ports.ClientRepository
}

func NewClientService(repo ports.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if input.Company == "" {
		return nil, domain.MissingField("company")
	}

	client := &domain.Client{
		Company:       input.Company,
		ContactPerson: input.ContactPerson,
	}
	if input.Email != "" {
		client.Email = NormalizeEmail(input.Email)
	}
	return s.repo.Create(ctx, client)
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}
