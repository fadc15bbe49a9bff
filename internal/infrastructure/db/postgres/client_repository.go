package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clients (company, contact_person, email)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		client.Company, client.ContactPerson, client.Email,
	).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", classify(err, domain.ErrClientExists))
	}
	return client, nil
}

// List derives jobs_count per client. The count matches jobs by client_id OR
// by exact department-name equality with the company name — a legacy fallback
// kept on purpose. Two differently-named departments under one client
// undercount; a department name colliding with an unrelated company name
// overcounts.
func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.company, c.contact_person, c.email, c.created_at,
		        (SELECT COUNT(*) FROM jobs j
		          WHERE j.client_id = c.id OR j.department = c.company) AS jobs_count
		 FROM clients c
		 ORDER BY c.created_at DESC, c.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Company, &c.ContactPerson, &c.Email, &c.CreatedAt, &c.JobsCount); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
