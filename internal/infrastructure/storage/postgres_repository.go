package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq" // Postgres driver

	"TechPulse/internal/domain"
	"TechPulse/internal/ports"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// Open connects to Postgres and pins connection pool settings.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

// PostgresRepository reads and writes persisted articles.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleStore = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListRecent returns all persisted articles ordered by insertion time
// descending, which is the ordering the aggregator's recent feed relies on.
func (r *PostgresRepository) ListRecent(ctx context.Context) ([]domain.StoredArticle, error) {
	if r.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query, args, err := r.builder.
		Select("id", "title", "url", "topic", "published_date", "created_at").
		From("articles").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.StoredArticle
	for rows.Next() {
		var article domain.StoredArticle
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.URL,
			&article.Topic,
			&article.PublishedDate,
			&article.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, nil
}

// SaveArticle upserts a classified article keyed by title, so a
// re-scraped headline refreshes its topic instead of duplicating.
func (r *PostgresRepository) SaveArticle(ctx context.Context, article domain.StoredArticle) error {
	if r.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	query, args, err := r.builder.
		Insert("articles").
		Columns("title", "url", "topic", "published_date").
		Values(article.Title, article.URL, article.Topic, article.PublishedDate).
		Suffix(`ON CONFLICT (title) DO UPDATE
		        SET topic = EXCLUDED.topic,
		            url = EXCLUDED.url,
		            published_date = EXCLUDED.published_date`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert article: %w", err)
	}

	return nil
}
