package orca

import (
	"context"
	"net/http"
)

func (c *Client) RegisterAgent(ctx context.Context, creds Credentials, input AgentConnectionInput) (*AgentStatus, error) {
	var status AgentStatus
	if err := c.do(ctx, creds, http.MethodPost, "/api/db/agent/register", nil, input, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) TestAgent(ctx context.Context, creds Credentials, input AgentConnectionInput) (*AgentStatus, error) {
	var status AgentStatus
	if err := c.do(ctx, creds, http.MethodPost, "/api/db/agent/test", nil, input, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ConnectAgent(ctx context.Context, creds Credentials, input AgentConnectionInput) (*AgentStatus, error) {
	var status AgentStatus
	if err := c.do(ctx, creds, http.MethodPost, "/api/db/agent/connect", nil, input, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) SyncSchema(ctx context.Context, creds Credentials) ([]DatabaseTable, error) {
	var tables []DatabaseTable
	if err := c.do(ctx, creds, http.MethodPost, "/api/db/agent/sync-schema", nil, nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) ListTables(ctx context.Context, creds Credentials) ([]DatabaseTable, error) {
	var tables []DatabaseTable
	if err := c.do(ctx, creds, http.MethodGet, "/api/db/tables", nil, nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) SetTableAccess(ctx context.Context, creds Credentials, table string, allowed bool) (*DatabaseTable, error) {
	body := map[string]interface{}{"table": table, "allowed": allowed}
	var updated DatabaseTable
	if err := c.do(ctx, creds, http.MethodPatch, "/api/db/tables/access", nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
