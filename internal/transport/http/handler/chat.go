package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/charts"
	"orcabase-console/internal/chat"
	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
)

type ChatHandler struct {
	chatService *chat.Service
}

type SendMessageRequest struct {
	Question  string `json:"question" binding:"required"`
	WebSearch bool   `json:"web_search"`
}

type ApproveRequest struct {
	MessageID string `json:"message_id" binding:"required"`
}

type RejectRequest struct {
	MessageID string `json:"message_id" binding:"required"`
}

type WebSearchRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Send(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	thread, err := h.chatService.Send(c.Request.Context(), state, req.Question, req.WebSearch)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			upstreamError(c, err, "send message failed")
		}
		return
	}
	response.OK(c, thread)
}

func (h *ChatHandler) History(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	thread, err := h.chatService.History(c.Request.Context(), state)
	if err != nil {
		upstreamError(c, err, "get history failed")
		return
	}
	response.OK(c, thread)
}

func (h *ChatHandler) NewChat(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	if err := h.chatService.NewChat(c.Request.Context(), state); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "reset chat failed")
		return
	}
	response.OK(c, gin.H{"reset": true})
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	sessions, err := h.chatService.ListSessions(c.Request.Context(), state)
	if err != nil {
		upstreamError(c, err, "list sessions failed")
		return
	}
	response.OK(c, sessions)
}

// Approve executes the pending SQL server-side and returns the result along
// with a render-ready chart config for the tabular output.
func (h *ChatHandler) Approve(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.chatService.Approve(c.Request.Context(), state, req.MessageID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidInput), errors.Is(err, chat.ErrNoActiveSession):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, chat.ErrNoPendingApproval):
			response.Error(c, http.StatusNotFound, response.CodeApprovalNotFound, err.Error())
		default:
			upstreamError(c, err, "approve failed")
		}
		return
	}

	response.OK(c, gin.H{
		"result":  result.Result,
		"message": result.Message,
		"chart":   chartFromResult(&result.Result),
	})
}

func (h *ChatHandler) Reject(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	note, err := h.chatService.Reject(c.Request.Context(), state, req.MessageID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidInput), errors.Is(err, chat.ErrNoActiveSession):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, chat.ErrNoPendingApproval):
			response.Error(c, http.StatusNotFound, response.CodeApprovalNotFound, err.Error())
		default:
			upstreamError(c, err, "reject failed")
		}
		return
	}
	response.OK(c, gin.H{"message": note})
}

func (h *ChatHandler) SetWebSearch(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req WebSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.chatService.SetWebSearch(c.Request.Context(), state, *req.Enabled); err != nil {
		switch {
		case errors.Is(err, chat.ErrNoActiveSession):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			upstreamError(c, err, "update web search failed")
		}
		return
	}
	response.OK(c, gin.H{"enabled": *req.Enabled})
}

// chartFromResult picks the first column as x and the second as y. Results
// with fewer than two columns render as plain tables.
func chartFromResult(result *orca.QueryResult) interface{} {
	if result == nil || len(result.Columns) < 2 || len(result.Rows) == 0 {
		return nil
	}
	data := make([]charts.DataPoint, 0, len(result.Rows))
	for _, row := range result.Rows {
		data = append(data, charts.DataPoint(row))
	}
	return charts.Build(data, result.Columns[0], result.Columns[1], charts.SourceDatabase, "")
}
