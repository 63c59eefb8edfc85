package news

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultSerpAPIURL = "https://serpapi.com/search"

type SerpAPIClient struct {
	apiKey   string
	endpoint string
	client   *resty.Client
}

func NewSerpAPIClient(apiKey, endpoint string, timeout time.Duration) *SerpAPIClient {
	if endpoint == "" {
		endpoint = DefaultSerpAPIURL
	}
	return &SerpAPIClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   resty.New().SetTimeout(timeout),
	}
}

func (c *SerpAPIClient) Name() string {
	return "serpapi"
}

// Search queries the Google news vertical. The body is decoded whatever the
// status code, since the provider reports failures as {"error": "..."}.
func (c *SerpAPIClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	if c.apiKey == "" {
		return nil, ErrEmptyKey
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"engine":  "google",
			"q":       query,
			"tbm":     "nws",
			"num":     strconv.Itoa(num),
			"api_key": c.apiKey,
		}).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("serpapi fetch: %w", err)
	}

	var raw serpResponse
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("serpapi decode (status %d, body %s): %w", resp.StatusCode(), responseSnippet(resp.Body()), err)
	}

	if raw.Error != nil {
		return nil, &ProviderError{Message: *raw.Error}
	}

	if raw.NewsResults == nil {
		return nil, nil
	}

	results := make([]Result, 0, len(raw.NewsResults))
	for _, item := range raw.NewsResults {
		results = append(results, Result{
			Title:   item.Title,
			Source:  string(item.Source),
			Snippet: item.Snippet,
			Date:    item.Date,
			Link:    item.Link,
		})
	}

	return results, nil
}

func responseSnippet(body []byte) string {
	const maxLen = 256
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "<empty>"
	}
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

type serpResponse struct {
	Error       *string          `json:"error"`
	NewsResults []serpNewsResult `json:"news_results"`
}

type serpNewsResult struct {
	Title   string     `json:"title"`
	Source  serpSource `json:"source"`
	Snippet string     `json:"snippet"`
	Date    string     `json:"date"`
	Link    string     `json:"link"`
}

// serpSource accepts both the plain string the google engine returns and the
// {"name": ...} object the google_news engine returns.
type serpSource string

func (s *serpSource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = serpSource(name)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = serpSource(obj.Name)
	return nil
}
