package feed

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

	"github.com/bytedance/sonic"
	"github.com/partidos/partidos-service/internal/partido"
	"github.com/partidos/partidos-service/internal/status"
)

const (
	DefaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"
	maxBodyBytes   = 6 << 20
)

// ErrEmptyPayload is returned when the feed answers without a usable "response".
var ErrEmptyPayload = errors.New("feed returned no payload")

// Client talks to the upstream football API. Every request carries the
// account key in the x-apisports-key header.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a feed client. A zero timeout falls back to 20s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// envelope is the wrapper every feed endpoint answers with.
type envelope struct {
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Response json.RawMessage `json:"response"`
}

// StatusPayload is the decoded account snapshot plus the body it came from.
type StatusPayload struct {
	Record *status.Record
	Raw    []byte
}

// FixturesPayload is the decoded fixture list plus the body it came from.
// Results is the count the feed reported for the query.
type FixturesPayload struct {
	Fixtures []*partido.Partido
	Results  int
	Raw      []byte
}

// Status fetches the account, subscription and request-quota snapshot.
func (c *Client) Status(ctx context.Context) (*StatusPayload, error) {
	raw, env, err := c.get(ctx, "/status", nil)
	if err != nil {
		return nil, err
	}
	if firstByte(env.Response) != '{' {
		return nil, ErrEmptyPayload
	}
	var rec status.Record
	if err := sonic.Unmarshal(env.Response, &rec); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &StatusPayload{Record: &rec, Raw: raw}, nil
}

// FixturesByDate fetches every fixture scheduled on day (UTC calendar date).
// An empty list is not an error.
func (c *Client) FixturesByDate(ctx context.Context, day time.Time) (*FixturesPayload, error) {
	q := url.Values{}
	q.Set("date", day.UTC().Format("2006-01-02"))
	raw, env, err := c.get(ctx, "/fixtures", q)
	if err != nil {
		return nil, err
	}
	if firstByte(env.Response) != '[' {
		return nil, ErrEmptyPayload
	}
	fixtures := []*partido.Partido{}
	if err := sonic.Unmarshal(env.Response, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &FixturesPayload{Fixtures: fixtures, Results: env.Results, Raw: raw}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, *envelope, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("send request %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read response %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("feed status=%d path=%s body=%s", resp.StatusCode, path, abbreviate(raw))
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("decode envelope %s: %w", path, err)
	}
	if hasErrors(env.Errors) {
		return nil, nil, fmt.Errorf("feed errors on %s: %s", path, abbreviate(env.Errors))
	}
	return raw, &env, nil
}

// hasErrors treats null, [] and {} as "no errors"; the feed uses all three.
func hasErrors(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return false
	}
	return true
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func abbreviate(raw []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
