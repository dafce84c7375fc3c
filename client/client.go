// Package client is the Go consumer library for the employee management
// API. It owns the client side of a session: credential calls, the
// persisted session state, and the presence heartbeat that runs while a
// session is active.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// User is the sanitized user projection the API returns. It never
// carries a password field.
type User struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	Profile    string    `json:"profile,omitempty"`
	IsOnline   bool      `json:"is_online"`
	LastActive time.Time `json:"last_active"`
}

// Client is a thin typed wrapper over the HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. A nil httpClient
// falls back to http.DefaultClient; presence is advisory, so no timeout
// policy is layered on top of the transport's.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// RegisterInput is the public registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// AuthResult is the user+token pair returned by register and login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Register creates an employee account and returns the user with a
// session token.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates and returns the user with a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateOnlineStatus pushes a presence update for the session owning the
// token. Used for the login/logout edges and the recurring heartbeat.
func (c *Client) UpdateOnlineStatus(ctx context.Context, token string, online bool) error {
	payload := map[string]bool{"isOnline": online}
	return c.do(ctx, http.MethodPatch, "/api/auth/online-status", token, payload, nil)
}

// MyTasks returns the tasks assigned to the session user.
func (c *Client) MyTasks(ctx context.Context, token string) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/employee/tasks", token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Task mirrors the API task shape.
type Task struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
