package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RequestSpec describes one outbound API call.
type RequestSpec struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Client wraps an *http.Client with bearer injection and a single automatic
// retry after token refresh. Concurrent 401s share one in-flight renewal.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	creds            CredentialStore
	refreshGroup     singleflight.Group
	onSessionExpired func()
	logger           *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithSessionExpiredHook registers the only global side effect the client
// may trigger: forcing the application back to the login entry point after
// an unrecoverable refresh failure. The hook must not panic.
func WithSessionExpiredHook(hook func()) Option {
	return func(c *Client) { c.onSessionExpired = hook }
}

// New builds a client against the given base URL.
func New(baseURL string, creds CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		creds:      creds,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the uniform backend response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Do executes the request and unmarshals the envelope data field into out.
// A 401 from a bearer-authenticated endpoint triggers at most one
// refresh-and-retry cycle; every other status passes through as a
// ServiceError for the caller to handle.
func (c *Client) Do(ctx context.Context, spec RequestSpec, out any) error {
	status, body, err := c.send(ctx, spec, c.creds.AccessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && bearerAuthenticated(spec.Path) {
		access, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			c.expireSession()
			return fmt.Errorf("%w: %w", ErrSessionExpired, decodeError(status, body))
		}
		// exactly one retry, regardless of its outcome
		status, body, err = c.send(ctx, spec, access)
		if err != nil {
			return err
		}
	}

	return decodeResponse(status, body, out)
}

func (c *Client) send(ctx context.Context, spec RequestSpec, accessToken string) (int, []byte, error) {
	var reqBody io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + spec.Path
	if len(spec.Query) > 0 {
		endpoint += "?" + spec.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, endpoint, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// bearerAuthenticated reports whether the endpoint authenticates with the
// stored access token. The remaining auth endpoints carry their proof in the
// request body, so a 401 from them is a verdict on that payload and must
// reach the caller untouched.
func bearerAuthenticated(path string) bool {
	switch path {
	case "/auth/login", "/auth/refresh", "/auth/logout":
		return false
	}
	return true
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token. Concurrent callers are coalesced into a single renewal.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	result, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refresh := c.creds.RefreshToken()
		if refresh == "" {
			return "", ErrSessionExpired
		}

		status, body, err := c.send(ctx, RequestSpec{
			Method: http.MethodPost,
			Path:   "/auth/refresh",
			Body:   map[string]string{"refreshToken": refresh},
		}, "")
		if err != nil {
			return "", err
		}

		var payload struct {
			AccessToken string `json:"accessToken"`
		}
		if err := decodeResponse(status, body, &payload); err != nil {
			return "", err
		}
		if payload.AccessToken == "" {
			return "", ErrSessionExpired
		}
		if err := c.creds.SetAccessToken(payload.AccessToken); err != nil {
			return "", err
		}
		c.logger.Debug("access token refreshed")
		return payload.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// expireSession clears both tokens and notifies the application once. It
// never propagates a failure past the hook to avoid double-handling.
func (c *Client) expireSession() {
	_ = c.creds.Clear()
	c.logger.Warn("session expired; credentials cleared")
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func decodeResponse(status int, body []byte, out any) error {
	if status >= http.StatusBadRequest {
		return decodeError(status, body)
	}
	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("malformed response envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func decodeError(status int, body []byte) error {
	var env envelope
	message := ""
	if err := json.Unmarshal(body, &env); err == nil {
		message = env.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &ServiceError{Status: status, Message: message}
}
