package orca

import (
	"context"
	"net/http"
)

type AuthResult struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.do(ctx, Credentials{}, http.MethodPost, "/api/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.do(ctx, Credentials{}, http.MethodPost, "/api/auth/signup", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
