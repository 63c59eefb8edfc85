package model

import "time"

// MaxArticles caps the number of articles in a NewsResult.
const MaxArticles = 15

const (
	NoNewsSummary  = "No news found for the specified date and topics."
	NoNewsHeadline = "No News Available"
)

type NewsQuery struct {
	Date   string
	Topics []string
}

type Article struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

type NewsResult struct {
	Articles []Article `json:"articles"`
	Summary  string    `json:"summary"`
	Headline string    `json:"headline"`
}

// NoNewsResult is the successful answer when the provider found nothing.
func NoNewsResult() *NewsResult {
	return &NewsResult{
		Articles: []Article{},
		Summary:  NoNewsSummary,
		Headline: NoNewsHeadline,
	}
}

// Digest is a NewsResult as kept by the archive.
type Digest struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Topics    []string  `json:"topics"`
	Headline  string    `json:"headline"`
	Summary   string    `json:"summary"`
	Articles  []Article `json:"articles"`
	ModelUsed string    `json:"model_used"`
	CreatedAt time.Time `json:"created_at"`
}
