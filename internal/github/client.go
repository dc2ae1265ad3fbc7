// Package github implements the upstream gateway: query construction,
// batched GraphQL fetches and team repository resolution.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v61/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/karidea/pr.radiator/internal/config"
)

// Client talks to the GitHub GraphQL and REST APIs with a single bearer
// token. It performs no retries; failed calls surface as TransportError or
// UpstreamError and retry policy belongs to the caller.
type Client struct {
	cfg        config.GitHubConfig
	httpClient *http.Client
	rest       *gogithub.Client
	pages      *rate.Limiter
	logger     *zap.SugaredLogger
}

// NewClient builds a client bound to the configured token. The same oauth2
// transport backs both the GraphQL POSTs and the go-github REST client.
func NewClient(cfg config.GitHubConfig, logger *zap.SugaredLogger) (*Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	rest := gogithub.NewClient(httpClient)
	base, err := url.Parse(strings.TrimSuffix(cfg.APIBaseURL, "/") + "/")
	if err != nil {
		return nil, err
	}
	rest.BaseURL = base

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		rest:       rest,
		pages:      rate.NewLimiter(rate.Every(cfg.PageInterval), 1),
		logger:     logger,
	}, nil
}

// runQuery POSTs a GraphQL document and decodes the response into out.
func (c *Client) runQuery(ctx context.Context, query string, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GraphQLURL, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}
