package branchservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/session"
	"github.com/cashforcars/CFC-AppointmentService/pkg/metrics"
)

// upstreamName labels this client's calls in the upstream counter
const upstreamName = "branchservice"

// Logger is the logging interface this client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AuthClient obtains bearer tokens when the session holds none
type AuthClient interface {
	Login(ctx context.Context) (token string, ttl time.Duration, err error)
}

// Client talks to the branch availability backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	auth       AuthClient
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient creates a branch service client. The session is shared with the
// other upstream clients so a token obtained here serves them too. A nil
// metrics collector disables upstream counting.
func NewClient(baseURL string, timeout time.Duration, sess *session.Session, auth AuthClient, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		session: sess,
		auth:    auth,
		metrics: m,
		log:     log,
	}
}

// GetBranchesByVehicle fetches the branches able to purchase the journey's
// vehicle, with per-date slot availability. An optional ZIP re-centers the
// distance calculation.
func (c *Client) GetBranchesByVehicle(ctx context.Context, journeyID, zip string) ([]Branch, error) {
	endpoint := fmt.Sprintf("%s/branches/by-vehicle/%s", c.baseURL, url.PathEscape(journeyID))
	if zip != "" {
		endpoint += "?zip=" + url.QueryEscape(zip)
	}

	resp, err := c.doAuthorized(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below
	case http.StatusNotFound:
		return nil, ErrJourneyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var branches []Branch
	if err := json.NewDecoder(resp.Body).Decode(&branches); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d branches for journey=%s", len(branches), journeyID)
	return branches, nil
}

// GetBranchDetail fetches the full record of a single branch
func (c *Client) GetBranchDetail(ctx context.Context, branchID int64) (*BranchDetail, error) {
	endpoint := fmt.Sprintf("%s/branches/%d", c.baseURL, branchID)

	resp, err := c.doAuthorized(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below
	case http.StatusNotFound:
		return nil, ErrBranchNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var envelope branchDetailEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &envelope.BranchLocation, nil
}

// doAuthorized executes a request with a bearer token, logging in when the
// session is empty and once more when the backend rejects the token.
func (c *Client) doAuthorized(ctx context.Context, method, endpoint string) (*http.Response, error) {
	resp, err := c.send(ctx, method, endpoint)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	// Token rejected: drop it and retry once with a fresh login
	c.log.Warn("Bearer token rejected, re-authenticating")
	c.session.Invalidate()

	resp, err = c.send(ctx, method, endpoint)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, ErrUnauthorized
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string) (*http.Response, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(upstreamName, metrics.OutcomeError)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	c.metrics.RecordUpstream(upstreamName, metrics.OutcomeOK)
	return resp, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if token := c.session.Current(); token != "" {
		return token, nil
	}

	// Guarded refresh: concurrent 401 retries race to re-login, and only
	// the newest refresh may store its token. A superseded result still
	// serves its own request.
	gen := c.session.BeginRefresh()
	token, ttl, err := c.auth.Login(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: login failed: %v", ErrUnauthorized, err)
	}
	if _, err := c.session.IssueLatest(token, ttl, gen); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return token, nil
}
