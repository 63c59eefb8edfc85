package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"newsagent/internal/model"

	"github.com/lib/pq"
)

type DigestRepository struct {
	db *sql.DB
}

func NewDigestRepository(db *sql.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

func (r *DigestRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS news_digest (
			id BIGSERIAL PRIMARY KEY,
			digest_date TEXT NOT NULL,
			topics TEXT[] NOT NULL DEFAULT '{}',
			headline TEXT NOT NULL,
			summary TEXT NOT NULL,
			articles JSONB NOT NULL DEFAULT '[]',
			model_used TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// Record stores the digest and fills in its id and creation time.
func (r *DigestRepository) Record(ctx context.Context, digest *model.Digest) error {
	return r.SaveDigest(ctx, digest)
}

func (r *DigestRepository) SaveDigest(ctx context.Context, digest *model.Digest) error {
	articles, err := json.Marshal(digest.Articles)
	if err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO news_digest(digest_date, topics, headline, summary, articles, model_used)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, digest.Date, pq.Array(digest.Topics), digest.Headline, digest.Summary, articles, digest.ModelUsed).Scan(&digest.ID, &digest.CreatedAt)
}

func (r *DigestRepository) GetDigests(ctx context.Context, limit, offset int) ([]model.Digest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, digest_date, topics, headline, summary, articles, model_used, created_at
		FROM news_digest
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var digests []model.Digest
	for rows.Next() {
		var d model.Digest
		var articlesJSON []byte
		err := rows.Scan(&d.ID, &d.Date, pq.Array(&d.Topics), &d.Headline, &d.Summary, &articlesJSON, &d.ModelUsed, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(articlesJSON, &d.Articles); err != nil {
			return nil, err
		}
		digests = append(digests, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return digests, nil
}

func (r *DigestRepository) GetDigestTotal(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news_digest`).Scan(&total)
	return total, err
}

func (r *DigestRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
