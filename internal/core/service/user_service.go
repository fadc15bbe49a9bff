package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// UserService implements candidate account use-cases.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.FullName == "" {
		return nil, domain.MissingField("full_name")
	}
	if input.Email == "" {
		return nil, domain.MissingField("email")
	}
	if input.Password == "" {
		return nil, domain.MissingField("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		FullName:     input.FullName,
		Email:        NormalizeEmail(input.Email),
		PasswordHash: string(hash),
		Phone:        input.Phone,
	})
}

// Login mirrors the admin contract: one uniform failure for unknown email and
// wrong password alike.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.MissingField("email")
	}
	if password == "" {
		return nil, domain.MissingField("password")
	}

	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
