package commerce

import (
	"context"
	"net/http"

	"github.com/machinebox/graphql"
	"github.com/rakshalokam/storefront-api/configs"
	"github.com/rakshalokam/storefront-api/internal/session"
	"github.com/rakshalokam/storefront-api/internal/usecase"
)

// Client talks to the commerce backend's shop GraphQL API. It is stateless:
// the customer's session rides the request context and is forwarded as
// headers on every call, so one Client serves all requests.
type Client struct {
	gql          *graphql.Client
	channelToken string
}

func NewClient(cfg configs.Config) *Client {
	httpc := &http.Client{Timeout: cfg.Commerce.Timeout}
	return &Client{
		gql:          graphql.NewClient(cfg.Commerce.APIURL, graphql.WithHTTPClient(httpc)),
		channelToken: cfg.Commerce.ChannelToken,
	}
}

func (c *Client) run(ctx context.Context, req *graphql.Request, out any) error {
	s := session.From(ctx)
	if s.Cookie != "" {
		req.Header.Set("Cookie", s.Cookie)
	}
	if s.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+s.Bearer)
	}
	if c.channelToken != "" {
		req.Header.Set("vendure-token", c.channelToken)
	}
	return c.gql.Run(ctx, req, out)
}

var _ usecase.CommerceGateway = (*Client)(nil)
