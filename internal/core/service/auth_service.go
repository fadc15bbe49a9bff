package service

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// bcryptCost is the fixed work factor for all password hashing.
const bcryptCost = 10

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService implements admin registration and login.
type AuthService struct {
	repo ports.AdminRepository
}

func NewAuthService(repo ports.AdminRepository) *AuthService {
	return &AuthService{repo: repo}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	if email == "" {
		return nil, domain.MissingField("email")
	}
	if password == "" {
		return nil, domain.MissingField("password")
	}

	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, domain.Invalid("email format is invalid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials and returns the admin identity. Unknown email
// and wrong password produce the identical error so callers cannot enumerate
// registered accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	if email == "" {
		return nil, domain.MissingField("email")
	}
	if password == "" {
		return nil, domain.MissingField("password")
	}

	admin, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return admin, nil
}
