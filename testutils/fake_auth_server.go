package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// Credentials the fake auth provider accepts.
const (
	FakeAuthUsername = "emilys"
	FakeAuthPassword = "emilyspass"
	FakeAuthToken    = "fake-provider-token"
)

// FakeAuthServer imitates the auth provider's login endpoint. LoginCalls
// counts requests so tests can assert the provider was never consulted.
type FakeAuthServer struct {
	s          *httptest.Server
	loginCalls atomic.Int64
}

func NewFakeAuthServer() *FakeAuthServer {
	f := &FakeAuthServer{}
	r := chi.NewRouter()
	r.Post("/auth/login", f.loginHandler)
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeAuthServer) Close() {
	f.s.Close()
}

// URL returns the base for authapi.NewForTest, including the /auth prefix.
func (f *FakeAuthServer) URL() string {
	return f.s.URL + "/auth"
}

func (f *FakeAuthServer) LoginCalls() int64 {
	return f.loginCalls.Load()
}

func (f *FakeAuthServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	f.loginCalls.Add(1)

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid request body"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if creds.Username != FakeAuthUsername || creds.Password != FakeAuthPassword {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
		"id": 1,
		"username": "emilys",
		"email": "emily.johnson@x.dummyjson.com",
		"firstName": "Emily",
		"lastName": "Johnson",
		"gender": "female",
		"image": "https://dummyjson.com/icon/emilys/128",
		"token": "` + FakeAuthToken + `"
	}`))
}
