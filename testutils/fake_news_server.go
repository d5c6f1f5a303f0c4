package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// FakeNewsServer imitates the news provider. Fail() makes subsequent
// requests return 500 so tests can exercise the fallback path.
type FakeNewsServer struct {
	s       *httptest.Server
	failing atomic.Bool
}

func NewFakeNewsServer() *FakeNewsServer {
	f := &FakeNewsServer{}
	r := chi.NewRouter()
	r.Get("/everything", f.everythingHandler)
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeNewsServer) Close() {
	f.s.Close()
}

func (f *FakeNewsServer) URL() string {
	return f.s.URL
}

func (f *FakeNewsServer) Fail() {
	f.failing.Store(true)
}

func (f *FakeNewsServer) everythingHandler(w http.ResponseWriter, r *http.Request) {
	if f.failing.Load() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","totalResults":2,"articles":[
		{"title":"Live Provider Headline One","description":"First remote article.","urlToImage":"https://example.com/1.jpg","source":{"name":"Remote Wire"},"publishedAt":"2026-08-29T08:00:00Z","url":"https://example.com/a/1"},
		{"title":"Live Provider Headline Two","description":"Second remote article.","urlToImage":"https://example.com/2.jpg","source":{"name":"Remote Wire"},"publishedAt":"2026-08-29T06:00:00Z","url":"https://example.com/a/2"}
	]}`))
}
