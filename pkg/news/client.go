package news

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("search api key is empty")

// Result is a single news hit as reported by the search provider.
// Fields the provider left out are empty.
type Result struct {
	Title   string
	Source  string
	Snippet string
	Date    string
	Link    string
}

// ProviderError is returned when the provider answers with an explicit
// error field instead of results.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Searcher runs a news search. A nil slice with a nil error means the
// provider returned no results field at all.
type Searcher interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
	Name() string
}
