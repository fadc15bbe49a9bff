package ports

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// AdminRepository persists operator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// AuthService defines admin registration and login.
//
// Login returns identity only; no session or token is issued.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.AdminUser, error)
	Login(ctx context.Context, email, password string) (*domain.AdminUser, error)
}
