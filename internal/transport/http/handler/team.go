package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
)

type TeamHandler struct {
	client *orca.Client
}

type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email,max=128"`
	Role  string `json:"role" binding:"required,oneof=admin member viewer"`
}

func NewTeamHandler(client *orca.Client) *TeamHandler {
	return &TeamHandler{client: client}
}

func (h *TeamHandler) CreateInvite(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	invite, err := h.client.CreateInvite(c.Request.Context(), state.Credentials(), req.Email, req.Role)
	if err != nil {
		upstreamError(c, err, "create invite failed")
		return
	}
	response.OK(c, invite)
}

func (h *TeamHandler) ListInvites(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	invites, err := h.client.ListInvites(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "list invites failed")
		return
	}
	response.OK(c, invites)
}

func (h *TeamHandler) AcceptInvite(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	invite, err := h.client.AcceptInvite(c.Request.Context(), state.Credentials(), c.Param("id"))
	if err != nil {
		upstreamError(c, err, "accept invite failed")
		return
	}
	response.OK(c, invite)
}
