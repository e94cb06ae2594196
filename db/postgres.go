package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fly2any/alt-airports-api/config"
	_ "github.com/lib/pq"
)

// PostgresFareStore reads fare aggregates from the surrounding application's
// fare_observations table.
type PostgresFareStore struct {
	db *sql.DB
}

// NewPostgresFareStore opens a PostgreSQL-backed fare-history store.
func NewPostgresFareStore(cfg config.PostgresConfig) (*PostgresFareStore, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &PostgresFareStore{db: db}, nil
}

// AggregateFare implements FareHistoryStore.
func (s *PostgresFareStore) AggregateFare(ctx context.Context, origin, destination, dateBucket, cabin string) (FareAggregate, error) {
	var agg FareAggregate
	err := s.db.QueryRowContext(ctx, `
		SELECT
			percentile_cont(0.5) WITHIN GROUP (ORDER BY price),
			AVG(price),
			COUNT(*),
			MIN(currency)
		FROM fare_observations
		WHERE origin = $1
		  AND destination = $2
		  AND date_bucket = $3
		  AND cabin = $4
		GROUP BY origin, destination`,
		origin, destination, dateBucket, cabin,
	).Scan(&agg.Median, &agg.Mean, &agg.SampleSize, &agg.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return FareAggregate{}, ErrNoData
	}
	if err != nil {
		return FareAggregate{}, fmt.Errorf("fare aggregate query: %w", err)
	}
	if agg.Currency == "" {
		agg.Currency = "USD"
	}
	return agg, nil
}

// Close closes the database connection
func (s *PostgresFareStore) Close() error {
	return s.db.Close()
}
