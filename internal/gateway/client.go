// Package gateway is the dashboard's HTTP client for the campaign backend.
// Each resource group maps one logical operation onto one request and
// decodes the reply into domain records.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campaignhub/internal/domain"
	"campaignhub/internal/infra"
)

// TokenSource yields the bearer token to attach, or "" for none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenStore is the persistent client storage holding the bearer token.
type TokenStore interface {
	TokenSource
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Options configures the backend client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Tokens         TokenStore
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the campaign backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     *infra.Logger
}

// ListOptions pages a list request. Zero values are omitted.
type ListOptions struct {
	Skip  int
	Limit int
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Skip > 0 {
		q.Set("skip", fmt.Sprint(o.Skip))
	}
	if o.Limit > 0 {
		q.Set("limit", fmt.Sprint(o.Limit))
	}
	return q
}

type errorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000/api/v1"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("gateway: invalid base url %q", opts.BaseURL)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     opts.Tokens,
		logger:     infra.OrNop(opts.Logger),
	}, nil
}

// BaseURL returns the resolved backend endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Campaigns() *CampaignAPI {
	return &CampaignAPI{resource[domain.Campaign]{c: c, path: "/campaigns"}}
}

func (c *Client) Communities() *CommunityAPI {
	return &CommunityAPI{resource[domain.Community]{c: c, path: "/communities"}}
}

func (c *Client) Donors() *DonorAPI {
	return &DonorAPI{resource[domain.Donor]{c: c, path: "/donors"}}
}

func (c *Client) Analytics() *AnalyticsAPI { return &AnalyticsAPI{c: c} }

func (c *Client) ML() *MLAPI { return &MLAPI{c: c} }

func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

// do sends one request. A nil out skips decoding the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("gateway: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("gateway: exchange")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &DecodeError{Path: path, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// bearer reads the stored token. A storage failure is logged and the request
// goes out unauthenticated; the backend then decides.
func (c *Client) bearer(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("gateway: token unavailable")
		return ""
	}
	return strings.TrimSpace(token)
}

func errorMessage(status int, raw []byte) string {
	var detail errorResponse
	if err := json.Unmarshal(raw, &detail); err == nil {
		if msg := detailText(detail.Detail); msg != "" {
			return msg
		}
		if detail.Message != "" {
			return detail.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// detailText accepts both {"detail": "msg"} and validation lists of the form
// {"detail": [{"msg": "..."}]}.
func detailText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
