package mockauth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/footworks/footyscope/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) Login(ctx context.Context, username, password string) (*model.Session, error) {
	args := c.Called(ctx, username, password)

	var res *model.Session
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Session)
	}

	return res, args.Error(1)
}
