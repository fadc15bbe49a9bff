package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int64
	deleted []int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.Email] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := r.users[email]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for email, user := range r.users {
		if user.ID == id {
			delete(r.users, email)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func TestUserService_Signup_Success(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	user, err := svc.Signup(context.Background(), ports.SignupInput{
		FullName: "Alice Doe",
		Email:    "Alice@Example.com",
		Password: "pass123",
		Phone:    "+1 555 0100",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	inputs := []ports.SignupInput{
		{Email: "a@b.com", Password: "x"},
		{FullName: "Bob", Password: "x"},
		{FullName: "Bob", Email: "a@b.com"},
	}
	for _, in := range inputs {
		var ve *domain.ValidationError
		if _, err := svc.Signup(context.Background(), in); !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError for %+v, got %v", in, err)
		}
	}
}

func TestUserService_Signup_Duplicate(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	in := ports.SignupInput{FullName: "Bob", Email: "bob@example.com", Password: "x"}
	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, _ = svc.Signup(context.Background(), ports.SignupInput{
		FullName: "Carol", Email: "carol@example.com", Password: "goodpass",
	})

	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, wrongErr := svc.Login(context.Background(), "carol@example.com", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both failures, got %v and %v", unknownErr, wrongErr)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, _ = svc.Signup(context.Background(), ports.SignupInput{
		FullName: "Dave", Email: "dave@example.com", Password: "s3cret",
	})

	user, err := svc.Login(context.Background(), "DAVE@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.FullName != "Dave" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, _ := svc.Signup(context.Background(), ports.SignupInput{
		FullName: "Eve", Email: "eve@example.com", Password: "x",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for second delete, got %v", err)
	}
}
