package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// FakePlacesServer imitates the places provider's nearby-search endpoint.
type FakePlacesServer struct {
	s       *httptest.Server
	failing atomic.Bool
}

func NewFakePlacesServer() *FakePlacesServer {
	f := &FakePlacesServer{}
	r := chi.NewRouter()
	r.Get("/place/nearbysearch/json", f.nearbyHandler)
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakePlacesServer) Close() {
	f.s.Close()
}

func (f *FakePlacesServer) URL() string {
	return f.s.URL
}

func (f *FakePlacesServer) Fail() {
	f.failing.Store(true)
}

func (f *FakePlacesServer) nearbyHandler(w http.ResponseWriter, r *http.Request) {
	if f.failing.Load() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"results":[
		{"place_id":"remote-1","name":"Downtown Hoops Center","vicinity":"100 Main St","rating":4.4,
		 "geometry":{"location":{"lat":40.71,"lng":-74.0}},
		 "opening_hours":{"open_now":true},"price_level":2,
		 "photos":[{"photo_reference":"photo-ref-1"}]},
		{"name":"Unnamed Court","vicinity":"222 Side St","rating":3.9,
		 "geometry":{"location":{"lat":40.72,"lng":-74.01}}}
	]}`))
}
