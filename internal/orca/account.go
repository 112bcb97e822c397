package orca

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Billing(ctx context.Context, creds Credentials) (*BillingSummary, error) {
	var summary BillingSummary
	if err := c.do(ctx, creds, http.MethodGet, "/api/billing", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) AuditLog(ctx context.Context, creds Credentials, limit int) ([]AuditEntry, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var entries []AuditEntry
	if err := c.do(ctx, creds, http.MethodGet, "/api/audit-logs", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
