package orca

import (
	"context"
	"net/http"
)

func (c *Client) ListWorkspaces(ctx context.Context, creds Credentials) ([]Workspace, error) {
	var workspaces []Workspace
	if err := c.do(ctx, creds, http.MethodGet, "/api/workspaces", nil, nil, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (c *Client) CreateWorkspace(ctx context.Context, creds Credentials, name string) (*Workspace, error) {
	body := map[string]string{"name": name}
	var workspace Workspace
	if err := c.do(ctx, creds, http.MethodPost, "/api/workspaces", nil, body, &workspace); err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (c *Client) RenameWorkspace(ctx context.Context, creds Credentials, id, name string) (*Workspace, error) {
	body := map[string]string{"name": name}
	var workspace Workspace
	if err := c.do(ctx, creds, http.MethodPatch, "/api/workspaces/"+id, nil, body, &workspace); err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (c *Client) DeleteWorkspace(ctx context.Context, creds Credentials, id string) error {
	return c.do(ctx, creds, http.MethodDelete, "/api/workspaces/"+id, nil, nil, nil)
}

func (c *Client) ListMembers(ctx context.Context, creds Credentials, workspaceID string) ([]Member, error) {
	var members []Member
	if err := c.do(ctx, creds, http.MethodGet, "/api/workspaces/"+workspaceID+"/members", nil, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}
