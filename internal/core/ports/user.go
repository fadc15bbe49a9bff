package ports

import (
	"context"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// SignupInput carries all data needed to create a candidate account.
type SignupInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// UserRepository persists candidate accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService defines candidate use-cases.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
