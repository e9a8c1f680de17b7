package driver

import (
	"context"
	"fmt"
	"os"

	"feed-ranker/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseDriver reads signal data (declared preferences, search events,
// follow edges) from Postgres.
type DatabaseDriver struct {
	pool *pgxpool.Pool
}

func NewDatabaseDriver(pool *pgxpool.Pool) *DatabaseDriver {
	return &DatabaseDriver{pool: pool}
}

// NewDatabasePool initializes the connection pool from environment
// variables. DATABASE_URL wins; otherwise the URL is assembled from the
// individual DB_* variables.
func NewDatabasePool(ctx context.Context) (*pgxpool.Pool, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbName := os.Getenv("DB_NAME")
		dbUser := os.Getenv("FEED_RANKER_DB_USER")
		dbPassword := os.Getenv("FEED_RANKER_DB_PASSWORD")

		if dbHost == "" || dbPort == "" || dbName == "" || dbUser == "" || dbPassword == "" {
			return nil, &DriverError{
				Op:  "NewDatabasePool",
				Err: "database connection parameters are not set. Required: DB_HOST, DB_PORT, DB_NAME, FEED_RANKER_DB_USER, FEED_RANKER_DB_PASSWORD",
			}
		}

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=prefer", dbUser, dbPassword, dbHost, dbPort, dbName)
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, &DriverError{
			Op:  "NewDatabasePool",
			Err: "failed to parse database URL: " + err.Error(),
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, &DriverError{
			Op:  "NewDatabasePool",
			Err: "failed to create database pool: " + err.Error(),
		}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &DriverError{
			Op:  "NewDatabasePool",
			Err: "failed to ping database: " + err.Error(),
		}
	}

	logger.Logger.Info("Database connected successfully")
	return pool, nil
}

// GetDeclaredTags returns a user's declared preference tags grouped by
// kind. A user with no rows yields empty lists.
func (d *DatabaseDriver) GetDeclaredTags(ctx context.Context, userID string) (*DeclaredTagsDriver, error) {
	query := `
		SELECT
			COALESCE(array_agg(tag ORDER BY tag) FILTER (WHERE kind = 'composer'), '{}') AS composers,
			COALESCE(array_agg(tag ORDER BY tag) FILTER (WHERE kind = 'era'), '{}') AS eras,
			COALESCE(array_agg(tag ORDER BY tag) FILTER (WHERE kind = 'instrument'), '{}') AS instruments
		FROM user_preferences
		WHERE user_id = $1
	`

	tags := &DeclaredTagsDriver{}
	err := d.pool.QueryRow(ctx, query, userID).Scan(&tags.Composers, &tags.Eras, &tags.Instruments)
	if err != nil {
		return nil, &DriverError{
			Op:  "GetDeclaredTags",
			Err: err.Error(),
		}
	}
	return tags, nil
}

// GetTopQueries returns a user's most frequent search queries inside the
// trailing window, most frequent first. Ties break on the query string so
// the ranking is stable.
func (d *DatabaseDriver) GetTopQueries(ctx context.Context, userID string, windowDays, limit int) ([]TermFrequencyDriver, error) {
	query := `
		SELECT query, COUNT(*) AS freq
		FROM search_events
		WHERE user_id = $1
		  AND created_at >= now() - make_interval(days => $2)
		  AND query <> ''
		GROUP BY query
		ORDER BY freq DESC, query
		LIMIT $3
	`
	return d.queryTermFrequencies(ctx, "GetTopQueries", query, userID, windowDays, limit)
}

// GetTopCategories returns a user's most frequent search categories inside
// the trailing window, most frequent first.
func (d *DatabaseDriver) GetTopCategories(ctx context.Context, userID string, windowDays, limit int) ([]TermFrequencyDriver, error) {
	query := `
		SELECT category, COUNT(*) AS freq
		FROM search_events
		WHERE user_id = $1
		  AND created_at >= now() - make_interval(days => $2)
		  AND category IS NOT NULL
		  AND category <> ''
		GROUP BY category
		ORDER BY freq DESC, category
		LIMIT $3
	`
	return d.queryTermFrequencies(ctx, "GetTopCategories", query, userID, windowDays, limit)
}

func (d *DatabaseDriver) queryTermFrequencies(ctx context.Context, op, query, userID string, windowDays, limit int) ([]TermFrequencyDriver, error) {
	rows, err := d.pool.Query(ctx, query, userID, windowDays, limit)
	if err != nil {
		return nil, &DriverError{Op: op, Err: err.Error()}
	}
	defer rows.Close()

	var terms []TermFrequencyDriver
	for rows.Next() {
		var term TermFrequencyDriver
		if err := rows.Scan(&term.Term, &term.Count); err != nil {
			return nil, &DriverError{Op: op, Err: err.Error()}
		}
		terms = append(terms, term)
	}
	if err := rows.Err(); err != nil {
		return nil, &DriverError{Op: op, Err: err.Error()}
	}
	return terms, nil
}

// GetFolloweeIDs returns the full followee set of a user, no truncation.
func (d *DatabaseDriver) GetFolloweeIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT followee_id
		FROM user_follows
		WHERE follower_id = $1
		ORDER BY followee_id
	`

	rows, err := d.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, &DriverError{Op: "GetFolloweeIDs", Err: err.Error()}
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &DriverError{Op: "GetFolloweeIDs", Err: err.Error()}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &DriverError{Op: "GetFolloweeIDs", Err: err.Error()}
	}
	return ids, nil
}

// Close closes the underlying pool.
func (d *DatabaseDriver) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}
