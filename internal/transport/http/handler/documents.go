package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/charts"
	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
)

const maxUploadSize = 25 << 20 // 25 MB

var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".csv":  true,
	".docx": true,
}

type DocumentsHandler struct {
	client *orca.Client
}

func NewDocumentsHandler(client *orca.Client) *DocumentsHandler {
	return &DocumentsHandler{client: client}
}

func (h *DocumentsHandler) List(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	documents, err := h.client.ListDocuments(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "list documents failed")
		return
	}
	response.OK(c, documents)
}

// Upload validates size and extension locally, then forwards the raw file.
// Extraction, chunking and embedding all happen in the core API; the returned
// document transitions out of pending asynchronously.
func (h *DocumentsHandler) Upload(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file")
		return
	}
	if file.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file too large (max 25MB)")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unsupported file type")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to read file")
		return
	}
	defer f.Close()

	document, err := h.client.UploadDocument(c.Request.Context(), state.Credentials(), file.Filename, f)
	if err != nil {
		upstreamError(c, err, "upload failed")
		return
	}
	response.OK(c, document)
}

func (h *DocumentsHandler) Delete(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid document id")
		return
	}
	if err := h.client.DeleteDocument(c.Request.Context(), state.Credentials(), id); err != nil {
		upstreamError(c, err, "delete document failed")
		return
	}
	response.OK(c, gin.H{"deleted_document_id": id})
}

// Analytics returns the usage report decorated with a render-ready chart
// config for the query series.
func (h *DocumentsHandler) Analytics(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	report, err := h.client.DocumentAnalytics(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "fetch analytics failed")
		return
	}

	data := make([]charts.DataPoint, 0, len(report.Series))
	for _, point := range report.Series {
		data = append(data, charts.DataPoint{"date": point.Date, "queries": point.Queries})
	}
	response.OK(c, gin.H{
		"report": report,
		"chart":  charts.Build(data, "date", "queries", charts.SourceDocument, ""),
	})
}
