// Package client implements the HTTP client used by authctl to talk to an
// authd server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cctv-platform/authd/internal/common"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SignUpResult mirrors the server's 201 response.
type SignUpResult struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SignInResult mirrors the server's 200 response; Token is refresh-class.
type SignInResult struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Profile mirrors the server's refresh response; Token is access-class.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Birthday string `json:"birthday"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

func (c *Client) SignUp(ctx context.Context, fullName, birthday, email, username, password string) (*SignUpResult, error) {
	body := map[string]string{
		"fullname": fullName,
		"birthday": birthday,
		"email":    email,
		"username": username,
		"password": password,
	}

	out := &SignUpResult{}
	if err := c.post(ctx, "/signup", body, nil, http.StatusCreated, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	out := &SignInResult{}
	if err := c.post(ctx, "/signin", body, nil, http.StatusOK, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Profile, error) {
	header := map[string]string{"Authorization": "Bearer " + refreshToken}

	out := &Profile{}
	if err := c.post(ctx, "/refresh", nil, header, http.StatusOK, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, body any, header map[string]string, wantStatus int, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError maps failure statuses onto the shared sentinel errors so
// callers can use errors.Is, keeping the server's message as context.
func statusError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, payload.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, payload.Message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, payload.Message)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload.Message)
	}
}
