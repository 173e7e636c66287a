// Package client talks to the TravelEats HTTP API on behalf of the terminal
// client. It holds the current session and refreshes the access token once
// when the server reports it expired.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

const maxResponseBytes = 4 << 20

// Profile is the signed-in user's profile as the server returns it.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullname"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest holds the sign-up form. All fields are required.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
}

// ProfileUpdate lists profile fields to change. Nil fields are left as is.
type ProfileUpdate struct {
	Username  *string `json:"username,omitempty"`
	FullName  *string `json:"fullname,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type authResponse struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	ExpiresIn    int     `json:"expiresIn"`
	User         Profile `json:"user"`
}

type searchParams struct {
	Keyword string `url:"q"`
}

type searchResponse struct {
	Results []domain.ContentSummary `json:"results"`
}

// Client is an API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	mu        sync.RWMutex
	session   Session
	onSession func(Session)

	refreshMu sync.Mutex
}

// New creates a Client for the API at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("component", "client"),
	}
}

// Session returns the session currently held.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// SetSession replaces the held session, e.g. with one restored from disk.
func (c *Client) SetSession(s Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

// OnSessionChange registers fn to receive every session the client obtains
// from the server (sign-in, registration, token refresh) and the zero
// Session on sign-out.
func (c *Client) OnSessionChange(fn func(Session)) {
	c.mu.Lock()
	c.onSession = fn
	c.mu.Unlock()
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, false); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	c.adopt(resp)
	return &resp.User, nil
}

// Login signs in with email and password. A rejected pair is reported as
// ErrBadCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*Profile, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp, false); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == CodeUnauthorized {
			return nil, fmt.Errorf("client.Login: %w: %w", ErrBadCredentials, err)
		}
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	c.adopt(resp)
	return &resp.User, nil
}

// Refresh exchanges the held refresh token for a new token pair. A
// rejected refresh token drops the session.
func (c *Client) Refresh(ctx context.Context) error {
	sess := c.Session()
	if sess.RefreshToken == "" {
		return fmt.Errorf("client.Refresh: %w", ErrSignedOut)
	}
	return c.refresh(ctx, sess.RefreshToken)
}

// Logout revokes the session on the server and drops it locally. The local
// session is dropped even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.Session().IsZero() {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, true)
	c.drop()

	var apiErr *APIError
	if err != nil && !(errors.As(err, &apiErr) && apiErr.Code == CodeUnauthorized) {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// Me returns the signed-in user's profile.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &p, true); err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	return &p, nil
}

// UpdateProfile changes the signed-in user's profile.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodPatch, "/api/me", upd, &p, true); err != nil {
		return nil, fmt.Errorf("client.UpdateProfile: %w", err)
	}
	return &p, nil
}

// Search returns the meals or drinks whose name matches keyword.
func (c *Client) Search(ctx context.Context, kind domain.ContentKind, keyword string) ([]domain.ContentSummary, error) {
	values, err := query.Values(searchParams{Keyword: keyword})
	if err != nil {
		return nil, fmt.Errorf("client.Search: encode query: %w", err)
	}

	var resp searchResponse
	path := collectionPath(kind) + "?" + values.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, false); err != nil {
		return nil, fmt.Errorf("client.Search: %w", err)
	}
	if resp.Results == nil {
		resp.Results = []domain.ContentSummary{}
	}
	return resp.Results, nil
}

// Detail returns one meal or drink. When signed in, the server records the
// view in the user's activity log.
func (c *Client) Detail(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	path := collectionPath(kind) + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, &item, false); err != nil {
		return nil, fmt.Errorf("client.Detail: %w", err)
	}
	return &item, nil
}

// History returns the signed-in user's activity, most recent first.
func (c *Client) History(ctx context.Context) (domain.ActivityView, error) {
	var view domain.ActivityView
	if err := c.do(ctx, http.MethodGet, "/api/me/activity", nil, &view, true); err != nil {
		return domain.ActivityView{}, fmt.Errorf("client.History: %w", err)
	}
	return view, nil
}

func collectionPath(kind domain.ContentKind) string {
	if kind == domain.ContentDrink {
		return "/api/drinks"
	}
	return "/api/meals"
}

// do sends one API call. When requireSession is set the call fails fast
// without a session, and a 401 answer triggers one token refresh and one
// retry. Calls without requireSession still carry the access token when
// one is held.
func (c *Client) do(ctx context.Context, method, path string, body, out any, requireSession bool) error {
	sess := c.Session()
	if requireSession && sess.IsZero() {
		return ErrSignedOut
	}

	err := c.send(ctx, method, path, body, out, sess.AccessToken)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized || sess.RefreshToken == "" {
		return err
	}

	if err := c.refresh(ctx, sess.RefreshToken); err != nil {
		return err
	}
	return c.send(ctx, method, path, body, out, c.Session().AccessToken)
}

// refresh rotates the token pair unless another call already rotated away
// from stale.
func (c *Client) refresh(ctx context.Context, stale string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	current := c.Session()
	if current.RefreshToken != stale {
		if current.IsZero() {
			return ErrSignedOut
		}
		return nil
	}

	var resp authResponse
	err := c.send(ctx, http.MethodPost, "/auth/refresh", map[string]string{"refreshToken": stale}, &resp, "")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			c.log.InfoContext(ctx, "refresh token rejected, signing out")
			c.drop()
		}
		return fmt.Errorf("client.Refresh: %w", err)
	}

	c.adopt(resp)
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, accessToken string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnreachable, err)
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		c.log.DebugContext(ctx, "non-JSON response",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: unexpected %d response", ErrUnreachable, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			return fmt.Errorf("%w: decode error response: %w", ErrUnreachable, err)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnreachable, err)
	}
	return nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

func (c *Client) adopt(resp authResponse) {
	c.publish(Session{
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	})
}

func (c *Client) drop() {
	c.publish(Session{})
}

func (c *Client) publish(s Session) {
	c.mu.Lock()
	c.session = s
	fn := c.onSession
	c.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}
