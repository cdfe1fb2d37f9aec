package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TestRank-hq/testrank/internal/config"
)

func TestCreateIssue(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Issue{ID: "10001", Key: "QA-42"})
	}))
	defer srv.Close()

	c := NewClient(config.JIRAConfig{
		BaseURL:    srv.URL + "/",
		Token:      "demo-token",
		ProjectKey: "QA",
	})
	require.True(t, c.Available())

	issue, err := c.CreateIssue(context.Background(), "Low confidence priority", "details", "")
	require.NoError(t, err)

	assert.Equal(t, "QA-42", issue.Key)
	assert.Equal(t, "/rest/api/3/issue", gotPath)
	// No email configured: Bearer auth.
	assert.Equal(t, "Bearer demo-token", gotAuth)

	fields := gotBody["fields"].(map[string]any)
	assert.Equal(t, "Low confidence priority", fields["summary"])
	// Default issue type.
	assert.Equal(t, map[string]any{"name": "Task"}, fields["issuetype"])
	assert.Equal(t, map[string]any{"key": "QA"}, fields["project"])
}

func TestCreateIssue_BasicAuthWithEmail(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Issue{Key: "QA-1"})
	}))
	defer srv.Close()

	c := NewClient(config.JIRAConfig{
		BaseURL:    srv.URL,
		Email:      "qa@example.com",
		Token:      "api-token",
		ProjectKey: "QA",
	})

	_, err := c.CreateIssue(context.Background(), "s", "d", "Bug")
	require.NoError(t, err)
	// base64("qa@example.com:api-token")
	assert.Equal(t, "Basic cWFAZXhhbXBsZS5jb206YXBpLXRva2Vu", gotAuth)
}

func TestCreateIssue_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no permission", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(config.JIRAConfig{BaseURL: srv.URL, Token: "t", ProjectKey: "QA"})

	_, err := c.CreateIssue(context.Background(), "s", "d", "Bug")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestAvailable(t *testing.T) {
	assert.False(t, NewClient(config.JIRAConfig{}).Available())
	assert.False(t, NewClient(config.JIRAConfig{BaseURL: "http://jira"}).Available())
	assert.True(t, NewClient(config.JIRAConfig{BaseURL: "http://jira", Token: "t"}).Available())
}
