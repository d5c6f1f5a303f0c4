// Package authapi wraps the remote auth provider's login endpoint. The
// local registered-user fallback lives in the domain store's login thunk,
// not here; this client only speaks to the network.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/model"
)

const DefaultURL = "https://dummyjson.com/auth"

const genericLoginError = "Login failed"

type Client interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return &client{
		url: DefaultURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *client) Login(ctx context.Context, username, password string) (*model.Session, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, apperr.Network(genericLoginError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.Network(genericLoginError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Network(genericLoginError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Network(genericLoginError, err)
	}

	if resp.StatusCode != http.StatusOK {
		// The provider's error body carries the user-facing message.
		msg := gjson.GetBytes(body, "message").String()
		if msg == "" {
			msg = genericLoginError
		}
		return nil, apperr.Network(msg, fmt.Errorf("auth provider status %d", resp.StatusCode))
	}

	doc := gjson.ParseBytes(body)
	token := doc.Get("token").String()
	if token == "" {
		// Newer provider versions renamed the field.
		token = doc.Get("accessToken").String()
	}
	if token == "" {
		return nil, apperr.Network(genericLoginError, fmt.Errorf("auth provider response has no token"))
	}

	return &model.Session{
		Token: token,
		User: model.UserProfile{
			ID:        doc.Get("id").Int(),
			Username:  doc.Get("username").String(),
			Email:     doc.Get("email").String(),
			FirstName: doc.Get("firstName").String(),
			LastName:  doc.Get("lastName").String(),
			Gender:    doc.Get("gender").String(),
			Image:     doc.Get("image").String(),
		},
	}, nil
}
