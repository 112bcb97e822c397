package orca

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HeaderWorkspaceID scopes a request to the active workspace.
const HeaderWorkspaceID = "X-Workspace-Id"

// HeaderPublicAPIKey authenticates anonymous widget traffic.
const HeaderPublicAPIKey = "X-Public-Api-Key"

// Credentials are attached to every outgoing request. Empty fields are omitted.
type Credentials struct {
	Token        string
	WorkspaceID  string
	PublicAPIKey string
}

// APIError is a non-2xx response from the core API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("core api status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client talks to the OrcaBase core API. All real work (auth, ingestion,
// retrieval, SQL generation, agent execution) happens behind it; the console
// only forwards and renders.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks core API reachability without credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, Credentials{}, http.MethodGet, "/api/health", nil, nil, nil)
}

func (c *Client) do(ctx context.Context, creds Credentials, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setAuthHeaders(req, creds)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("core api request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read core api response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse core api response failed: %w", err)
	}
	return nil
}

func setAuthHeaders(req *http.Request, creds Credentials) {
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}
	if creds.WorkspaceID != "" {
		req.Header.Set(HeaderWorkspaceID, creds.WorkspaceID)
	}
	if creds.PublicAPIKey != "" {
		req.Header.Set(HeaderPublicAPIKey, creds.PublicAPIKey)
	}
}

func decodeAPIError(status int, raw []byte) *APIError {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			message = parsed.Error
		} else if parsed.Message != "" {
			message = parsed.Message
		}
	}
	return &APIError{Status: status, Message: message}
}
