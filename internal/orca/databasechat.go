package orca

import (
	"context"
	"net/http"
)

type QueryInput struct {
	SessionID string `json:"session_id,omitempty"`
	Question  string `json:"question"`
	WebSearch bool   `json:"web_search"`
}

// QueryResponse carries the session the backend attached the exchange to
// (a new one when the input carried no session id) plus the appended messages.
type QueryResponse struct {
	Session  ChatSession   `json:"session"`
	Messages []ChatMessage `json:"messages"`
}

func (c *Client) Query(ctx context.Context, creds Credentials, input QueryInput) (*QueryResponse, error) {
	var result QueryResponse
	if err := c.do(ctx, creds, http.MethodPost, "/api/database-chat/query", nil, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type ApproveInput struct {
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	SQL       string `json:"sql"`
}

func (c *Client) Approve(ctx context.Context, creds Credentials, input ApproveInput) (*QueryResult, error) {
	var result QueryResult
	if err := c.do(ctx, creds, http.MethodPost, "/api/database-chat/approve", nil, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListChatSessions(ctx context.Context, creds Credentials) ([]ChatSession, error) {
	var sessions []ChatSession
	if err := c.do(ctx, creds, http.MethodGet, "/api/database-chat/sessions", nil, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) SessionMessages(ctx context.Context, creds Credentials, sessionID string) ([]ChatMessage, error) {
	var messages []ChatMessage
	if err := c.do(ctx, creds, http.MethodGet, "/api/database-chat/sessions/"+sessionID+"/messages", nil, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SetWebSearch(ctx context.Context, creds Credentials, sessionID string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return c.do(ctx, creds, http.MethodPut, "/api/database-chat/sessions/"+sessionID+"/web-search", nil, body, nil)
}
