package news

import (
	"time"

	"github.com/footworks/footyscope/model"
)

// FallbackArticles is the bundled headline list served when the provider is
// unavailable. Timestamps are offsets from now so the feed always looks
// recent.
func FallbackArticles(now time.Time) []model.NewsArticle {
	return []model.NewsArticle{
		{
			Title:       "Champions League Quarter-Finals Draw Completed",
			Description: "The UEFA Champions League quarter-finals draw has been completed with some exciting matchups set to take place next month.",
			ImageURL:    "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=800&h=400&fit=crop",
			Source:      "Football Today",
			PublishedAt: now.Add(-2 * time.Hour),
			URL:         "https://example.com/news/1",
		},
		{
			Title:       "Premier League Top Scorer Race Heats Up",
			Description: "The race for the Premier League Golden Boot is intensifying as the season enters its final stretch with multiple players in contention.",
			ImageURL:    "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800&h=400&fit=crop",
			Source:      "Sports Weekly",
			PublishedAt: now.Add(-5 * time.Hour),
			URL:         "https://example.com/news/2",
		},
		{
			Title:       "World Cup Qualifiers: Upsets and Surprises",
			Description: "Several unexpected results in the World Cup qualifying rounds have shaken up the standings and put traditional powerhouses under pressure.",
			ImageURL:    "https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?w=800&h=400&fit=crop",
			Source:      "Global Football",
			PublishedAt: now.Add(-8 * time.Hour),
			URL:         "https://example.com/news/3",
		},
		{
			Title:       "Transfer Window: Big Money Moves Expected",
			Description: "With the transfer window approaching, several top clubs are preparing record-breaking bids for star players across Europe.",
			ImageURL:    "https://images.unsplash.com/photo-1522778119026-d647f0596c20?w=800&h=400&fit=crop",
			Source:      "Transfer News",
			PublishedAt: now.Add(-12 * time.Hour),
			URL:         "https://example.com/news/4",
		},
		{
			Title:       "Young Talent Shines in International Debut",
			Description: "A promising young player made an impressive debut for their national team, showcasing skills that have caught the attention of top scouts.",
			ImageURL:    "https://images.unsplash.com/photo-1606925797300-0b35e9d1794e?w=800&h=400&fit=crop",
			Source:      "Youth Football",
			PublishedAt: now.Add(-18 * time.Hour),
			URL:         "https://example.com/news/5",
		},
		{
			Title:       "Tactical Analysis: Evolution of Modern Football",
			Description: "How modern tactics and formations are changing the beautiful game with emphasis on pressing and possession-based football.",
			ImageURL:    "https://images.unsplash.com/photo-1589487391730-58f20eb2c308?w=800&h=400&fit=crop",
			Source:      "Football Analytics",
			PublishedAt: now.Add(-24 * time.Hour),
			URL:         "https://example.com/news/6",
		},
	}
}
