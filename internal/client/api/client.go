// Package api is a thin JSON client for the biogate HTTP endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// User is the public identity returned by every successful auth call.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse mirrors the server's AuthResult.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// FingerKeys carries the ten finger slots for enrollment.
type FingerKeys struct {
	RightThumb  string `json:"right_thumb_finger"`
	RightIndex  string `json:"right_index_finger"`
	RightMiddle string `json:"right_middle_finger"`
	RightRing   string `json:"right_ring_finger"`
	RightShort  string `json:"right_short_finger"`
	LeftThumb   string `json:"left_thumb_finger"`
	LeftIndex   string `json:"left_index_finger"`
	LeftMiddle  string `json:"left_middle_finger"`
	LeftRing    string `json:"left_ring_finger"`
	LeftShort   string `json:"left_short_finger"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) post(ctx context.Context, path, token string, body any) (*AuthResponse, error) {

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("server: %s", e.Error)
	}

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Register(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	return c.post(ctx, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.post(ctx, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) BiometricLogin(ctx context.Context, key string) (*AuthResponse, error) {
	return c.post(ctx, "/api/auth/biometric-login", "", map[string]string{
		"biometric_key": key,
	})
}

func (c *Client) SetBiometric(ctx context.Context, token string, keys FingerKeys) (*AuthResponse, error) {
	return c.post(ctx, "/api/auth/biometric", token, keys)
}
