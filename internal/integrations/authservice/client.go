package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cashforcars/CFC-AppointmentService/pkg/metrics"
)

// loginAttempts bounds how often a failed login is retried per call
const loginAttempts = 3

// upstreamName labels this client's calls in the upstream counter
const upstreamName = "authservice"

// Logger is the logging interface this client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client authenticates against the auth backend with service credentials
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        Logger
	now        func() time.Time
}

// NewClient creates an auth client. Credentials come from configuration,
// never from source. A nil metrics collector disables upstream counting.
func NewClient(baseURL, username, password string, timeout time.Duration, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
		log:     log,
		now:     time.Now,
	}
}

// Login obtains a bearer token and its lifetime, retrying transient
// failures up to loginAttempts times. A zero lifetime means the backend
// reported no usable expiry and the session default applies.
func (c *Client) Login(ctx context.Context) (string, time.Duration, error) {
	var lastErr error

	for attempt := 1; attempt <= loginAttempts; attempt++ {
		token, ttl, err := c.login(ctx)
		if err == nil {
			return token, ttl, nil
		}
		lastErr = err

		// Rejected credentials will not improve on retry
		if err == ErrBadCredentials {
			c.log.Error("Login rejected for user=%s", c.username)
			return "", 0, err
		}

		c.log.Warn("Login attempt %d/%d failed: %v", attempt, loginAttempts, err)
	}

	return "", 0, lastErr
}

func (c *Client) login(ctx context.Context) (string, time.Duration, error) {
	payload, err := json.Marshal(loginRequest{Username: c.username, Password: c.password})
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to encode credentials: %v", ErrInternal, err)
	}

	url := c.baseURL + "/auth/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(upstreamName, metrics.OutcomeError)
		return "", 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordUpstream(upstreamName, metrics.OutcomeOK)

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", 0, ErrBadCredentials
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if login.Token == "" {
		return "", 0, ErrMissingToken
	}

	return login.Token, c.lifetime(&login), nil
}

// lifetime resolves the token TTL from whichever expiry field the backend
// populated
func (c *Client) lifetime(login *loginResponse) time.Duration {
	if login.ExpiresIn > 0 {
		return time.Duration(login.ExpiresIn) * time.Second
	}
	for _, stamp := range []string{login.ExpiresAt, login.Expiration} {
		if stamp == "" {
			continue
		}
		expiry, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			c.log.Warn("Login: unparseable expiry timestamp %q", stamp)
			continue
		}
		if ttl := expiry.Sub(c.now()); ttl > 0 {
			return ttl
		}
	}
	return 0
}
