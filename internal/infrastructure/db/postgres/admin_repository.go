package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admin_users (email, password_hash) VALUES ($1, $2) RETURNING id`,
		admin.Email, admin.PasswordHash,
	).Scan(&admin.ID)
	if err != nil {
		return nil, fmt.Errorf("insert admin: %w", classify(err, domain.ErrAdminExists))
	}
	return admin, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash FROM admin_users WHERE email = $1`,
		email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &admin, nil
}
