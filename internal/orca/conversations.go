package orca

import (
	"context"
	"net/http"
)

// Widget conversations are authenticated by the workspace public API key,
// not a bearer token; callers pass Credentials{PublicAPIKey: ...}.

func (c *Client) StartConversation(ctx context.Context, creds Credentials, visitorID string) (*Conversation, error) {
	body := map[string]string{"visitor_id": visitorID}
	var conversation Conversation
	if err := c.do(ctx, creds, http.MethodPost, "/api/conversations", nil, body, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (c *Client) ConversationMessages(ctx context.Context, creds Credentials, conversationID string) ([]ConversationMessage, error) {
	var messages []ConversationMessage
	if err := c.do(ctx, creds, http.MethodGet, "/api/conversations/"+conversationID+"/messages", nil, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) PostConversationMessage(ctx context.Context, creds Credentials, conversationID, content string) (*ConversationMessage, error) {
	body := map[string]string{"content": content}
	var message ConversationMessage
	if err := c.do(ctx, creds, http.MethodPost, "/api/conversations/"+conversationID+"/messages", nil, body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// Admin handoff queue: conversations where a visitor asked for a human.

func (c *Client) ListAdminConversations(ctx context.Context, creds Credentials) ([]Conversation, error) {
	var conversations []Conversation
	if err := c.do(ctx, creds, http.MethodGet, "/api/admin/conversations", nil, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) PostAdminReply(ctx context.Context, creds Credentials, conversationID, content string) (*ConversationMessage, error) {
	body := map[string]string{"content": content}
	var message ConversationMessage
	if err := c.do(ctx, creds, http.MethodPost, "/api/admin/conversations/"+conversationID+"/messages", nil, body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}
