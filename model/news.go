package model

import "time"

// NewsArticle comes from the news provider or the bundled fallback list.
// Never persisted.
type NewsArticle struct {
	Title       string
	Description string
	ImageURL    string
	Source      string
	PublishedAt time.Time
	URL         string
}
