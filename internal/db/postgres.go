package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/config"
)

// InitPostgres opens the sqlx connection pool, retrying while the database
// comes up. The handle is returned to the caller and injected where needed;
// no package-level pool exists.
func InitPostgres(cfg config.PostgresConfig) (*sqlx.DB, error) {
	var (
		pool *sqlx.DB
		err  error
	)
	for i := 0; i < 10; i++ {
		pool, err = sqlx.Connect("postgres", cfg.DSN())
		if err == nil {
			return pool, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, err
}
