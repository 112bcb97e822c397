package orca

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

func (c *Client) ListDocuments(ctx context.Context, creds Credentials) ([]Document, error) {
	var documents []Document
	if err := c.do(ctx, creds, http.MethodGet, "/api/rag/documents", nil, nil, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// UploadDocument forwards a file as multipart form data. Ingestion and
// embedding happen server-side; the returned document starts out pending.
func (c *Client) UploadDocument(ctx context.Context, creds Credentials, filename string, file io.Reader) (*Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart form failed: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload body failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/rag/documents", &buf)
	if err != nil {
		return nil, fmt.Errorf("build upload request failed: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	setAuthHeaders(req, creds)

	var document Document
	if err := c.send(req, &document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (c *Client) DeleteDocument(ctx context.Context, creds Credentials, id string) error {
	return c.do(ctx, creds, http.MethodDelete, "/api/rag/documents/"+id, nil, nil, nil)
}

func (c *Client) DocumentAnalytics(ctx context.Context, creds Credentials) (*AnalyticsReport, error) {
	var report AnalyticsReport
	if err := c.do(ctx, creds, http.MethodGet, "/api/rag/analytics", nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
