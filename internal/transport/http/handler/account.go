package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
)

type AccountHandler struct {
	client *orca.Client
}

func NewAccountHandler(client *orca.Client) *AccountHandler {
	return &AccountHandler{client: client}
}

func (h *AccountHandler) Billing(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	summary, err := h.client.Billing(c.Request.Context(), state.Credentials())
	if err != nil {
		upstreamError(c, err, "fetch billing failed")
		return
	}
	response.OK(c, summary)
}

func (h *AccountHandler) AuditLog(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.client.AuditLog(c.Request.Context(), state.Credentials(), limit)
	if err != nil {
		upstreamError(c, err, "fetch audit log failed")
		return
	}
	response.OK(c, entries)
}
