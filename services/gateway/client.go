package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jakmauu/tutam9-frontend/core"
	"github.com/jakmauu/tutam9-frontend/core/assignment"
	"github.com/jakmauu/tutam9-frontend/core/session"
)

const (
	authHeader      = "x-auth-token"
	requestIDHeader = "X-Request-Id"
)

// Client consumes the remote assignment API. It implements both the
// assignment.Gateway and session.AuthGateway contracts.
type Client struct {
	baseURL string
	client  *http.Client
	token   func() string // yields "" while anonymous
	log     core.Logger
}

var (
	_ assignment.Gateway  = (*Client)(nil)
	_ session.AuthGateway = (*Client)(nil)
)

func NewClient(conf *core.Config, token func() string, log core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		client:  &http.Client{Timeout: conf.APITimeout},
		token:   token,
		log:     log,
	}
}

// APIError is any non-2xx response; Message comes from the server's
// {"message": ...} body when it sends one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return "api: " + e.Message
}

// IsAuthError reports whether err is the gateway rejecting our credentials
// or token.
func IsAuthError(err error) bool {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// Assignment endpoints

func (c *Client) ListAssignments(ctx context.Context) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	err := c.do(ctx, http.MethodGet, "/assignments", c.token(), nil, &out)
	return out, err
}

func (c *Client) ListAssignmentsByDay(ctx context.Context, day string) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	err := c.do(ctx, http.MethodGet, "/assignments/day/"+url.PathEscape(day), c.token(), nil, &out)
	return out, err
}

func (c *Client) CreateAssignment(ctx context.Context, draft assignment.NewAssignment) (assignment.Assignment, error) {
	var out assignment.Assignment
	err := c.do(ctx, http.MethodPost, "/assignments", c.token(), draft, &out)
	return out, err
}

func (c *Client) PatchAssignment(ctx context.Context, id string, patch assignment.Patch) (assignment.Assignment, error) {
	var out assignment.Assignment
	err := c.do(ctx, http.MethodPatch, "/assignments/"+url.PathEscape(id), c.token(), patch, &out)
	return out, err
}

func (c *Client) DeleteAssignment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/assignments/"+url.PathEscape(id), c.token(), nil, nil)
}

func (c *Client) SearchAssignments(ctx context.Context, query string) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	err := c.do(ctx, http.MethodGet, "/assignments/search?query="+url.QueryEscape(query), c.token(), nil, &out)
	return out, err
}

// Session endpoints; register and login are the only calls made without a
// token.

func (c *Client) Register(ctx context.Context, acc session.NewAccount) (session.Auth, error) {
	var out session.Auth
	err := c.do(ctx, http.MethodPost, "/users/register", "", acc, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.Auth, error) {
	var out session.Auth
	err := c.do(ctx, http.MethodPost, "/users/login", "", creds, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context, token string) (session.Identity, error) {
	var out session.Identity
	err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &out)
	return out, err
}

// do runs one round-trip: marshal body, stamp headers, map non-2xx to
// *APIError, decode into out when provided.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "marshalling %s %s body", method, path)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())
	if token != "" {
		req.Header.Set(authHeader, token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := c.apiError(resp)
		c.log.Debug("gateway error", method+" "+path, apiErr)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
