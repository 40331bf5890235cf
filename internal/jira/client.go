// Package jira talks to the JIRA REST API directly. It is only used when the
// jcli command line cannot provide what is needed.
package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type API interface {
	Myself(ctx context.Context) (User, error)
	Projects(ctx context.Context) ([]Project, error)
}

type User struct {
	AccountID   string `json:"accountId"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Email       string `json:"emailAddress"`
}

type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Label renders the project the way the project menu shows it.
func (p Project) Label() string {
	if p.Name == "" {
		return p.Key
	}
	return p.Key + " - " + p.Name
}

type Client struct {
	baseURL  string
	username string
	token    string
	http     *http.Client
}

func NewClient(cfg Config, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.Server, "/"),
		username: cfg.Username,
		token:    cfg.Token,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Myself(ctx context.Context) (User, error) {
	var user User
	if err := c.get(ctx, "/rest/api/2/myself", &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "/rest/api/2/project", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setAuthHeader(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// setAuthHeader uses basic auth when a username is configured and a bearer
// token otherwise (personal access tokens on JIRA Server).
func (c *Client) setAuthHeader(req *http.Request) {
	if c.username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.token))
		req.Header.Set("Authorization", "Basic "+auth)
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
}
