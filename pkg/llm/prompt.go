package llm

import (
	"fmt"
	"strings"
)

const headlinePromptTemplate = `Based on the following %snews articles from %s about %s,
generate:
1. A compelling main headline in the style of a vintage %snewspaper (max 10 words)
2. A concise summary of the key developments (100-150 words)

News articles:
%s

Respond in JSON format:
{
    "headline": "Your headline here",
    "summary": "Your summary here"
}`

type ArticleInput struct {
	Title   string
	Source  string
	Snippet string
}

type PromptInput struct {
	Date     string
	Topics   []string
	Region   string
	Articles []ArticleInput
}

// HeadlinePrompt renders the front-page prompt. Output depends only on the input.
func HeadlinePrompt(in PromptInput) string {
	region := strings.TrimSpace(in.Region)
	if region != "" {
		region += " "
	}

	return fmt.Sprintf(headlinePromptTemplate,
		region,
		in.Date,
		strings.Join(in.Topics, ", "),
		region,
		formatArticlesForPrompt(in.Articles),
	)
}

func formatArticlesForPrompt(articles []ArticleInput) string {
	blocks := make([]string, 0, len(articles))
	for _, a := range articles {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nSource: %s\nSnippet: %s", a.Title, a.Source, a.Snippet))
	}
	return strings.Join(blocks, "\n\n")
}
