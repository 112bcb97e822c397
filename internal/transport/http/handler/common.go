package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/session"
	"orcabase-console/internal/transport/http/middleware"
	"orcabase-console/internal/transport/http/response"
)

func getStateFromContext(c *gin.Context) (*session.State, bool) {
	state, ok := middleware.StateFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "no session state")
	}
	return state, ok
}

// upstreamError maps a core API failure onto the envelope. Transport-level
// failures become 502; upstream statuses pass through where the page can act
// on them.
func upstreamError(c *gin.Context, err error, fallback string) {
	var apiErr *orca.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusBadRequest:
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, apiErr.Message)
		case http.StatusUnauthorized:
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, apiErr.Message)
		case http.StatusNotFound:
			response.Error(c, http.StatusNotFound, response.CodeNotFound, apiErr.Message)
		default:
			response.Error(c, http.StatusBadGateway, response.CodeUpstream, apiErr.Message)
		}
		return
	}
	response.Error(c, http.StatusBadGateway, response.CodeUpstream, fallback)
}
