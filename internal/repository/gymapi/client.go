// Package gymapi is the client of the gym REST API, which owns every record
// the console shows.
package gymapi

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

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/metrics"
)

// Client calls the gym API with the bearer token of the console session.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		now:     time.Now,
	}
}

// envelope is the gym API response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *errorBody      `json:"error"`
	Meta    json.RawMessage `json:"meta"`
	Errors  json.RawMessage `json:"errors"`
	// Raw is the whole response body, for endpoints that do not wrap their payload in data.
	Raw json.RawMessage `json:"-"`
}

// message returns the top-level message, falling back to error.message.
func (e *envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != nil {
		return e.Error.Message
	}
	return ""
}

// do sends one request. endpoint labels the request in metrics. body, when
// not nil, is sent as JSON. The envelope's data is decoded into out when out
// is not nil.
func (c *Client) do(ctx context.Context, sess *auth.Session, endpoint, method, path string, query url.Values, body, out interface{}) (*envelope, error) {
	if sess != nil && tokenExpired(sess.APIToken, c.now()) {
		return nil, auth.ErrSessionExpired
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.APIToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, method, 0, time.Since(start))
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", upstream.ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveUpstream(endpoint, method, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", upstream.ErrUnavailable, endpoint, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	env.Raw = raw

	if resp.StatusCode == http.StatusUnauthorized && sess != nil {
		return nil, auth.ErrSessionExpired
	}
	if resp.StatusCode >= 300 {
		msg := env.message()
		if decodeErr != nil {
			msg = strings.TrimSpace(string(raw))
			if len(msg) > 200 {
				msg = msg[:200]
			}
		}
		return nil, &upstream.RejectedError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", upstream.ErrUnavailable, endpoint, decodeErr)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("%w: decode %s data: %v", upstream.ErrUnavailable, endpoint, err)
		}
	}
	return &env, nil
}

// TokenExpiry reads the exp claim of a JWT bearer token without verifying it.
// Opaque tokens have no known expiry.
func TokenExpiry(token string) (time.Time, bool) {
	if strings.Count(token, ".") != 2 {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func tokenExpired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	return ok && !now.Before(exp)
}

func pathID(id string) string {
	return url.PathEscape(id)
}
