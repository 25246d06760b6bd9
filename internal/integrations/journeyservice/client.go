package journeyservice

import (
	"bytes"
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
const upstreamName = "journeyservice"

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

// Client talks to the customer-journey backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	auth       AuthClient
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient creates a journey service client. A nil metrics collector
// disables upstream counting.
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

// GetJourney fetches a customer journey by ID
func (c *Client) GetJourney(ctx context.Context, journeyID string) (*Journey, error) {
	endpoint := fmt.Sprintf("%s/customer-journey/%s", c.baseURL, url.PathEscape(journeyID))

	resp, err := c.doAuthorized(ctx, http.MethodGet, endpoint, nil)
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

	var journey Journey
	if err := json.NewDecoder(resp.Body).Decode(&journey); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &journey, nil
}

// SubmitAppointment attaches a confirmed appointment to the journey
func (c *Client) SubmitAppointment(ctx context.Context, journeyID string, submission *AppointmentSubmission) error {
	endpoint := fmt.Sprintf("%s/customer-journey/%s/appointment", c.baseURL, url.PathEscape(journeyID))

	payload, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("%w: failed to encode submission: %v", ErrInternal, err)
	}

	resp, err := c.doAuthorized(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.log.Info("Appointment submitted for journey=%s location=%d date=%s",
			journeyID, submission.LocationID, submission.Date)
		return nil
	case http.StatusNotFound:
		return ErrJourneyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// CancelAppointment removes the journey's booked appointment
func (c *Client) CancelAppointment(ctx context.Context, journeyID string) error {
	endpoint := fmt.Sprintf("%s/customer-journey/%s/appointment/cancel", c.baseURL, url.PathEscape(journeyID))

	resp, err := c.doAuthorized(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("Appointment cancelled for journey=%s", journeyID)
		return nil
	case http.StatusNotFound:
		return ErrJourneyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// doAuthorized executes a request with a bearer token, logging in when the
// session is empty and once more when the backend rejects the token
func (c *Client) doAuthorized(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	resp, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	c.log.Warn("Bearer token rejected, re-authenticating")
	c.session.Invalidate()

	resp, err = c.send(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, ErrUnauthorized
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
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

	// Guarded refresh, see branchservice: only the newest re-login may
	// store its token on the shared session
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
