package store

import "context"

func reduceNews(s NewsState, a Action) NewsState {
	switch a := a.(type) {
	case newsPending:
		s.Loading = true
		return s
	case newsLoaded:
		s.Loading = false
		s.Articles = a.articles
		return s
	}
	return s
}

// FetchNews loads headlines. The news gateway guarantees a non-empty list.
func (s *Store) FetchNews(ctx context.Context, pageSize int) {
	s.Dispatch(newsPending{})
	articles := s.news.Headlines(ctx, pageSize)
	s.Dispatch(newsLoaded{articles: articles})
}
