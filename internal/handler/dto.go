package handler

type FetchNewsRequest struct {
	Date   string   `json:"date"`
	Topics []string `json:"topics"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ArticleResponse struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

type DigestResponse struct {
	ID        int64             `json:"id"`
	Date      string            `json:"date"`
	Topics    []string          `json:"topics"`
	Headline  string            `json:"headline"`
	Summary   string            `json:"summary"`
	Articles  []ArticleResponse `json:"articles"`
	ModelUsed string            `json:"model_used"`
	CreatedAt string            `json:"created_at"`
}

type DigestsResponse struct {
	Digests []DigestResponse `json:"digests"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}
