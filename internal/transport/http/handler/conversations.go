package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
)

// ConversationsHandler serves two audiences: the embeddable widget, where
// anonymous visitors are authenticated by the workspace public API key, and
// the admin handoff queue inside the dashboard.
type ConversationsHandler struct {
	client *orca.Client
}

type StartConversationRequest struct {
	VisitorID string `json:"visitor_id"`
}

type ConversationMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewConversationsHandler(client *orca.Client) *ConversationsHandler {
	return &ConversationsHandler{client: client}
}

func widgetCredentials(c *gin.Context) (orca.Credentials, bool) {
	key := strings.TrimSpace(c.GetHeader(orca.HeaderPublicAPIKey))
	if key == "" {
		key = strings.TrimSpace(c.Query("api_key"))
	}
	if key == "" {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "missing public api key")
		return orca.Credentials{}, false
	}
	return orca.Credentials{PublicAPIKey: key}, true
}

func (h *ConversationsHandler) Start(c *gin.Context) {
	creds, ok := widgetCredentials(c)
	if !ok {
		return
	}

	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VisitorID == "" {
		req.VisitorID = uuid.NewString()
	}

	conversation, err := h.client.StartConversation(c.Request.Context(), creds, req.VisitorID)
	if err != nil {
		upstreamError(c, err, "start conversation failed")
		return
	}
	response.OK(c, conversation)
}

func (h *ConversationsHandler) Messages(c *gin.Context) {
	creds, ok := widgetCredentials(c)
	if !ok {
		return
	}

	messages, err := h.client.ConversationMessages(c.Request.Context(), creds, c.Param("id"))
	if err != nil {
		upstreamError(c, err, "fetch conversation failed")
		return
	}
	response.OK(c, messages)
}

func (h *ConversationsHandler) Post(c *gin.Context) {
	creds, ok := widgetCredentials(c)
	if !ok {
		return
	}

	var req ConversationMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	message, err := h.client.PostConversationMessage(c.Request.Context(), creds, c.Param("id"), req.Content)
	if err != nil {
		upstreamError(c, err, "post message failed")
		return
	}
	response.OK(c, message)
}

func (h *ConversationsHandler) AdminList(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	conversations, err := h.client.ListAdminConversations(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "list conversations failed")
		return
	}
	response.OK(c, conversations)
}

func (h *ConversationsHandler) AdminReply(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req ConversationMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	message, err := h.client.PostAdminReply(c.Request.Context(), state.Credentials(), c.Param("id"), req.Content)
	if err != nil {
		upstreamError(c, err, "post reply failed")
		return
	}
	response.OK(c, message)
}
