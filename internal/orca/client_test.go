package orca

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientInjectsAuthHeaders(t *testing.T) {
	var gotAuth, gotWorkspace string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotWorkspace = r.Header.Get(HeaderWorkspaceID)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	creds := Credentials{Token: "tok-123", WorkspaceID: "ws-9"}

	_, err := client.ListWorkspaces(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "ws-9", gotWorkspace)
}

func TestClientOmitsEmptyHeaders(t *testing.T) {
	var hadAuth, hadWorkspace bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, hadWorkspace = r.Header[HeaderWorkspaceID]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.ListWorkspaces(context.Background(), Credentials{})
	require.NoError(t, err)
	assert.False(t, hadAuth)
	assert.False(t, hadWorkspace)
}

func TestClientPublicAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(HeaderPublicAPIKey)
		_, _ = w.Write([]byte(`{"id":"conv-1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	conversation, err := client.StartConversation(context.Background(), Credentials{PublicAPIKey: "pk-abc"}, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "pk-abc", gotKey)
	assert.Equal(t, "conv-1", conversation.ID)
}

func TestClientDecodesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"workspace not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.ListDocuments(context.Background(), Credentials{Token: "tok"})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Contains(t, err.Error(), "workspace not found")
}

func TestClientAPIErrorPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestUploadDocumentMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.pdf", header.Filename)
		_, _ = w.Write([]byte(`{"id":"doc-1","name":"report.pdf","status":"pending"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	document, err := client.UploadDocument(context.Background(), Credentials{Token: "tok"}, "report.pdf", strings.NewReader("fake pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "doc-1", document.ID)
	assert.Equal(t, DocumentStatusPending, document.Status)
}
