package orca

import (
	"context"
	"net/http"
)

func (c *Client) CreateInvite(ctx context.Context, creds Credentials, email, role string) (*Invite, error) {
	body := map[string]string{"email": email, "role": role}
	var invite Invite
	if err := c.do(ctx, creds, http.MethodPost, "/api/invites", nil, body, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

func (c *Client) ListInvites(ctx context.Context, creds Credentials) ([]Invite, error) {
	var invites []Invite
	if err := c.do(ctx, creds, http.MethodGet, "/api/invites", nil, nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *Client) AcceptInvite(ctx context.Context, creds Credentials, id string) (*Invite, error) {
	var invite Invite
	if err := c.do(ctx, creds, http.MethodPost, "/api/invites/"+id+"/accept", nil, nil, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}
