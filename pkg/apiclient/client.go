// Package apiclient is a typed HTTP client for the dashboard API, used by the
// terminal client.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	authdomain "creatorboard-backend/internal/auth/domain"
	"creatorboard-backend/pkg/youtube"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthResult is a successful signup or login response.
type AuthResult struct {
	Token string                    `json:"token"`
	User  *authdomain.PublicProfile `json:"user"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIError carries the server's message and status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.do(ctx, http.MethodPost, "/api/signup",
		map[string]string{"username": username, "email": email, "password": password}, nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"email": email, "password": password}, nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*authdomain.PublicProfile, error) {
	var result struct {
		User *authdomain.PublicProfile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &token, &result); err != nil {
		return nil, err
	}
	return result.User, nil
}

func (c *Client) VideoStats(ctx context.Context, videoID string) (*youtube.VideoStats, error) {
	var result youtube.VideoStats
	if err := c.do(ctx, http.MethodGet, "/api/video-stats/"+videoID, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScheduledVideo mirrors a schedule entry as the API returns it.
type ScheduledVideo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

func (c *Client) Schedule(ctx context.Context, token string) ([]*ScheduledVideo, error) {
	var result struct {
		Videos []*ScheduledVideo `json:"videos"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/schedule", nil, &token, &result); err != nil {
		return nil, err
	}
	return result.Videos, nil
}

func (c *Client) Contact(ctx context.Context, name, email, message string) error {
	return c.do(ctx, http.MethodPost, "/api/contact",
		map[string]string{"name": name, "email": email, "message": message}, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, bearer *string, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != nil {
		req.Header.Set("Authorization", "Bearer "+*bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
