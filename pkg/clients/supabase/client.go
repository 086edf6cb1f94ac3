package supabase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the hosted Supabase auth API (GoTrue). All reads and writes of
// identities go through this client; the service itself never stores credentials.
type Client struct {
	http *resty.Client
}

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/") + "/auth/v1").
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{http: httpClient}
}

type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// AuthError carries the identity service's own message so callers can surface
// it verbatim.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// apiError covers the field names GoTrue uses across endpoints.
type apiError struct {
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e *apiError) message() string {
	for _, candidate := range []string{e.ErrorDescription, e.Msg, e.Message, e.ErrorField} {
		if candidate != "" {
			return candidate
		}
	}
	return "authentication failed"
}

// SignUp registers a new identity. Metadata is stored as user_metadata and is
// where the profile's full name travels.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}

	session := new(Session)
	apiErr := new(apiError)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(session).
		SetError(apiErr).
		Post("/signup")
	if err != nil {
		return nil, fmt.Errorf("supabase signup: %w", err)
	}
	if resp.IsError() {
		return nil, &AuthError{Status: resp.StatusCode(), Message: apiErr.message()}
	}

	return session, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	session := new(Session)
	apiErr := new(apiError)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]any{"email": email, "password": password}).
		SetResult(session).
		SetError(apiErr).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("supabase signin: %w", err)
	}
	if resp.IsError() {
		return nil, &AuthError{Status: resp.StatusCode(), Message: apiErr.message()}
	}

	return session, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	apiErr := new(apiError)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetError(apiErr).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("supabase signout: %w", err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return &AuthError{Status: resp.StatusCode(), Message: apiErr.message()}
	}

	return nil
}

// GetUser resolves the identity behind an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	user := new(User)
	apiErr := new(apiError)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(user).
		SetError(apiErr).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("supabase get user: %w", err)
	}
	if resp.IsError() {
		return nil, &AuthError{Status: resp.StatusCode(), Message: apiErr.message()}
	}
	if user.ID == "" {
		return nil, &AuthError{Status: http.StatusUnauthorized, Message: "invalid token"}
	}

	return user, nil
}
