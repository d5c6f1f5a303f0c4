// Package news fetches football headlines. The provider needs an API key
// the app does not ship with, so the client degrades to a bundled article
// list on a missing key or any provider failure. Headlines never fails and
// never returns an empty list.
package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/footworks/footyscope/model"
)

const DefaultURL = "https://newsapi.org/v2"

const defaultPageSize = 10

type Client interface {
	Headlines(ctx context.Context, pageSize int) []model.NewsArticle
}

type client struct {
	url        string
	key        string
	httpClient *http.Client
	clock      clock.Clock
	log        zerolog.Logger
}

// New creates a news client. An empty key means the provider is never
// called.
func New(key string, clk clock.Clock, log zerolog.Logger) (Client, error) {
	return &client{
		url: DefaultURL,
		key: key,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		clock: clk,
		log:   log,
	}, nil
}

func NewForTest(url, key string, clk clock.Clock) Client {
	return &client{
		url:        url,
		key:        key,
		httpClient: http.DefaultClient,
		clock:      clk,
		log:        zerolog.Nop(),
	}
}

func (c *client) Headlines(ctx context.Context, pageSize int) []model.NewsArticle {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if c.key == "" {
		return truncate(FallbackArticles(c.clock.Now()), pageSize)
	}

	articles, err := c.fetch(ctx, pageSize)
	if err != nil {
		c.log.Warn().Err(err).Msg("news provider failed, serving fallback articles")
		return truncate(FallbackArticles(c.clock.Now()), pageSize)
	}
	return articles
}

func (c *client) fetch(ctx context.Context, pageSize int) ([]model.NewsArticle, error) {
	q := url.Values{}
	q.Set("q", "football OR soccer")
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", fmt.Sprint(pageSize))
	q.Set("apiKey", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating news http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending news http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from news provider: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading news response: %w", err)
	}

	articles := []model.NewsArticle{}
	for _, r := range gjson.GetBytes(body, "articles").Array() {
		published, _ := time.Parse(time.RFC3339, r.Get("publishedAt").String())
		articles = append(articles, model.NewsArticle{
			Title:       r.Get("title").String(),
			Description: r.Get("description").String(),
			ImageURL:    r.Get("urlToImage").String(),
			Source:      r.Get("source.name").String(),
			PublishedAt: published,
			URL:         r.Get("url").String(),
		})
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("news provider returned no articles")
	}
	return articles, nil
}

func truncate(articles []model.NewsArticle, n int) []model.NewsArticle {
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}
