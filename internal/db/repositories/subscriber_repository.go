package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/entities"
)

// SubscriberRepository is sqlx-backed: the newsletter list is a single flat
// table with no relations, raw SQL keeps it simple.
type SubscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db}
}

// Subscribe inserts an email. Duplicate subscriptions are idempotent: the
// existing row is returned without error.
func (r *SubscriberRepository) Subscribe(ctx context.Context, email string) (*entities.Subscriber, error) {
	query := `
		INSERT INTO subscribers (email)
		VALUES ($1)
		RETURNING id, email, created_at;
	`

	var sub entities.Subscriber
	err := r.db.QueryRowxContext(ctx, query, email).StructScan(&sub)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return r.FindByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return &sub, nil
}

// FindByEmail looks up one subscriber.
func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*entities.Subscriber, error) {
	query := `SELECT id, email, created_at FROM subscribers WHERE email = $1;`

	var sub entities.Subscriber
	err := r.db.QueryRowxContext(ctx, query, email).StructScan(&sub)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch subscriber: %w", err)
	}
	return &sub, nil
}

// ListAll returns the full list, newest first.
func (r *SubscriberRepository) ListAll(ctx context.Context) ([]entities.Subscriber, error) {
	query := `SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC;`

	var subs []entities.Subscriber
	if err := r.db.SelectContext(ctx, &subs, query); err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subs, nil
}

// Unsubscribe removes an email from the list.
func (r *SubscriberRepository) Unsubscribe(ctx context.Context, email string) error {
	query := `DELETE FROM subscribers WHERE email = $1;`

	res, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the subscriber total for the business gauge.
func (r *SubscriberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM subscribers;`); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return n, nil
}

// EnsureSchema creates the subscribers table when missing. The GORM side
// migrates its own tables; this one is ours.
func (r *SubscriberRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS subscribers (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			email text NOT NULL UNIQUE,
			created_at timestamptz NOT NULL DEFAULT now()
		);
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure subscribers schema: %w", err)
	}
	return nil
}
