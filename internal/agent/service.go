package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"newsagent/internal/metrics"
	"newsagent/internal/model"
	"newsagent/pkg/llm"
	"newsagent/pkg/news"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Recorder receives every summarized digest after the response is built.
// Recorder failures are logged and never reach the caller.
type Recorder interface {
	Record(ctx context.Context, digest *model.Digest) error
}

type Options struct {
	// GeneratorLabel names the generative provider in the missing-key error.
	GeneratorLabel string
	// Region is an optional adjective put in front of "news" and "newspaper" in the prompt.
	Region    string
	Recorders []Recorder
}

type Service struct {
	searcher       news.Searcher
	generator      llm.Generator
	generatorLabel string
	region         string
	recorders      []Recorder
}

// NewService wires the pipeline. A nil searcher or generator is allowed and
// turns every request into a missing configuration error.
func NewService(searcher news.Searcher, generator llm.Generator, opts Options) *Service {
	label := opts.GeneratorLabel
	if label == "" {
		label = llm.ProviderLabel(llm.ProviderGemini)
	}
	return &Service{
		searcher:       searcher,
		generator:      generator,
		generatorLabel: label,
		region:         opts.Region,
		recorders:      opts.Recorders,
	}
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func (s *Service) FetchNews(ctx context.Context, q model.NewsQuery) (*model.NewsResult, error) {
	result, err := s.fetchNews(ctx, q)
	if err != nil {
		var aerr *Error
		if errors.As(err, &aerr) {
			metrics.FetchRequests.WithLabelValues(string(aerr.Kind)).Inc()
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) fetchNews(ctx context.Context, q model.NewsQuery) (*model.NewsResult, error) {
	if s.searcher == nil {
		return nil, missingConfiguration("SERP API key not configured")
	}
	if s.generator == nil {
		return nil, missingConfiguration(fmt.Sprintf("%s API key not configured", s.generatorLabel))
	}

	if !ValidDate(q.Date) {
		return nil, invalidInput("Invalid date format. Use YYYY-MM-DD")
	}

	query := strings.Join(q.Topics, " ") + " " + q.Date

	start := time.Now()
	results, err := s.searcher.Search(ctx, query, model.MaxArticles)
	metrics.ObserveUpstream(s.searcher.Name(), start)
	if err != nil {
		var perr *news.ProviderError
		if errors.As(err, &perr) {
			return nil, upstream(perr.Message, err)
		}
		return nil, internal(err)
	}

	if results == nil {
		slog.Info("no news results", "date", q.Date, "topics", q.Topics)
		metrics.FetchRequests.WithLabelValues("no_news").Inc()
		return model.NoNewsResult(), nil
	}

	articles := toArticles(results, q.Date)

	prompt := llm.HeadlinePrompt(llm.PromptInput{
		Date:     q.Date,
		Topics:   q.Topics,
		Region:   s.region,
		Articles: toPromptInputs(articles),
	})

	start = time.Now()
	reply, err := s.generator.Generate(ctx, prompt)
	metrics.ObserveUpstream(s.generator.Model(), start)
	if err != nil {
		return nil, internal(err)
	}

	headline, ok := llm.ParseHeadline(reply)
	if !ok {
		slog.Warn("model reply is not valid JSON, using fallback text", "model", s.generator.Model(), "reply_length", len(reply))
		metrics.SummaryFallbacks.Inc()
	}

	result := &model.NewsResult{
		Articles: articles,
		Summary:  headline.Summary,
		Headline: headline.Headline,
	}

	s.record(ctx, q, result)
	metrics.FetchRequests.WithLabelValues("ok").Inc()

	return result, nil
}

func (s *Service) record(ctx context.Context, q model.NewsQuery, result *model.NewsResult) {
	if len(s.recorders) == 0 {
		return
	}

	digest := &model.Digest{
		Date:      q.Date,
		Topics:    q.Topics,
		Headline:  result.Headline,
		Summary:   result.Summary,
		Articles:  result.Articles,
		ModelUsed: s.generator.Model(),
	}

	for _, r := range s.recorders {
		if err := r.Record(ctx, digest); err != nil {
			slog.Error("error recording digest", "error", err, "date", q.Date)
		}
	}
}

func toArticles(results []news.Result, date string) []model.Article {
	if len(results) > model.MaxArticles {
		results = results[:model.MaxArticles]
	}

	articles := make([]model.Article, 0, len(results))
	for _, r := range results {
		a := model.Article{
			Title:   r.Title,
			Source:  r.Source,
			Snippet: r.Snippet,
			Date:    r.Date,
			URL:     r.Link,
		}
		if a.Date == "" {
			a.Date = date
		}
		articles = append(articles, a)
	}
	return articles
}

func toPromptInputs(articles []model.Article) []llm.ArticleInput {
	inputs := make([]llm.ArticleInput, len(articles))
	for i, a := range articles {
		inputs[i] = llm.ArticleInput{
			Title:   a.Title,
			Source:  a.Source,
			Snippet: a.Snippet,
		}
	}
	return inputs
}
