package repository

import (
	"context"
	"encoding/json"
	"newsagent/db"
	"newsagent/internal/model"
)

// DigestFeed announces new digests on a Redis list for downstream consumers.
type DigestFeed struct {
	queueKey string
}

func NewDigestFeed(queueKey string) *DigestFeed {
	return &DigestFeed{queueKey: queueKey}
}

type digestEvent struct {
	ID           int64    `json:"id,omitempty"`
	Date         string   `json:"date"`
	Topics       []string `json:"topics"`
	Headline     string   `json:"headline"`
	ArticleCount int      `json:"article_count"`
	ModelUsed    string   `json:"model_used"`
}

func (f *DigestFeed) Record(ctx context.Context, digest *model.Digest) error {
	data, err := json.Marshal(digestEvent{
		ID:           digest.ID,
		Date:         digest.Date,
		Topics:       digest.Topics,
		Headline:     digest.Headline,
		ArticleCount: len(digest.Articles),
		ModelUsed:    digest.ModelUsed,
	})
	if err != nil {
		return err
	}
	return db.PushToQueue(ctx, f.queueKey, string(data))
}

func (f *DigestFeed) Ping(ctx context.Context) error {
	_, err := db.GetQueueLength(ctx, f.queueKey)
	return err
}
