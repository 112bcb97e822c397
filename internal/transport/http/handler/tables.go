package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
)

type TablesHandler struct {
	client *orca.Client
}

type AgentConnectionRequest struct {
	Engine   string `json:"engine" binding:"required"`
	Host     string `json:"host" binding:"required"`
	Port     int    `json:"port" binding:"required,gt=0"`
	Database string `json:"database" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

type TableAccessRequest struct {
	Table   string `json:"table" binding:"required"`
	Allowed *bool  `json:"allowed" binding:"required"`
}

func NewTablesHandler(client *orca.Client) *TablesHandler {
	return &TablesHandler{client: client}
}

func (r AgentConnectionRequest) toInput() orca.AgentConnectionInput {
	return orca.AgentConnectionInput{
		Engine:   r.Engine,
		Host:     r.Host,
		Port:     r.Port,
		Database: r.Database,
		Username: r.Username,
		Password: r.Password,
	}
}

func (h *TablesHandler) RegisterAgent(c *gin.Context) {
	h.agentCall(c, h.client.RegisterAgent, "register agent failed")
}

func (h *TablesHandler) TestAgent(c *gin.Context) {
	h.agentCall(c, h.client.TestAgent, "test agent failed")
}

func (h *TablesHandler) ConnectAgent(c *gin.Context) {
	h.agentCall(c, h.client.ConnectAgent, "connect agent failed")
}

func (h *TablesHandler) agentCall(
	c *gin.Context,
	call func(ctx context.Context, creds orca.Credentials, input orca.AgentConnectionInput) (*orca.AgentStatus, error),
	fallback string,
) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req AgentConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	status, err := call(c.Request.Context(), state.Credentials(), req.toInput())
	if err != nil {
		upstreamError(c, err, fallback)
		return
	}
	response.OK(c, status)
}

func (h *TablesHandler) SyncSchema(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	tables, err := h.client.SyncSchema(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "sync schema failed")
		return
	}
	response.OK(c, tables)
}

func (h *TablesHandler) List(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	tables, err := h.client.ListTables(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "list tables failed")
		return
	}
	response.OK(c, tables)
}

func (h *TablesHandler) SetAccess(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req TableAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Allowed == nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	updated, err := h.client.SetTableAccess(c.Request.Context(), state.Credentials(), req.Table, *req.Allowed)
	if err != nil {
		upstreamError(c, err, "update table access failed")
		return
	}
	response.OK(c, updated)
}
