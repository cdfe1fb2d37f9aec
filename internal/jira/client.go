// Package jira is a minimal JIRA REST client used to raise issues for test
// cases whose priority enhancement comes back with low confidence.
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TestRank-hq/testrank/internal/config"
)

// Client talks to the JIRA REST API
type Client struct {
	baseURL    string
	email      string
	token      string
	projectKey string
	httpClient *http.Client
}

// NewClient creates a JIRA client from configuration
func NewClient(cfg config.JIRAConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		token:      cfg.Token,
		projectKey: cfg.ProjectKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Available reports whether the client is configured
func (c *Client) Available() bool {
	return c.baseURL != "" && c.token != ""
}

// Issue is a created JIRA issue reference
type Issue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

type createIssueRequest struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project   projectRef `json:"project"`
	Summary   string     `json:"summary"`
	Desc      string     `json:"description"`
	IssueType issueType  `json:"issuetype"`
}

type projectRef struct {
	Key string `json:"key"`
}

type issueType struct {
	Name string `json:"name"`
}

// CreateIssue creates an issue in the configured project.
func (c *Client) CreateIssue(ctx context.Context, summary, description, issuetype string) (*Issue, error) {
	if issuetype == "" {
		issuetype = "Task"
	}

	payload := createIssueRequest{
		Fields: issueFields{
			Project:   projectRef{Key: c.projectKey},
			Summary:   summary,
			Desc:      description,
			IssueType: issueType{Name: issuetype},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal issue: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/rest/api/3/issue", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("jira returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &issue, nil
}

// setHeaders applies authentication. Atlassian Cloud wants Basic auth with
// email:token; Server/Data Center wants a Bearer token.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	if c.email != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(c.email + ":" + c.token))
		req.Header.Set("Authorization", "Basic "+credentials)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
