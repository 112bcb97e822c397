package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/transport/http/response"
	"orcabase-console/internal/workspace"
)

type WorkspaceHandler struct {
	client           *orca.Client
	workspaceService *workspace.Service
}

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}

type RenameWorkspaceRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}

type SwitchWorkspaceRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
}

func NewWorkspaceHandler(client *orca.Client, workspaceService *workspace.Service) *WorkspaceHandler {
	return &WorkspaceHandler{client: client, workspaceService: workspaceService}
}

// List refreshes the workspace list and resolves the active workspace.
func (h *WorkspaceHandler) List(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	view, err := h.workspaceService.Refresh(c.Request.Context(), state)
	if err != nil {
		upstreamError(c, err, "list workspaces failed")
		return
	}
	response.OK(c, view)
}

func (h *WorkspaceHandler) Switch(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req SwitchWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	active, err := h.workspaceService.Switch(c.Request.Context(), state, req.WorkspaceID)
	if err != nil {
		switch {
		case errors.Is(err, workspace.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, workspace.ErrWorkspaceNotFound):
			response.Error(c, http.StatusNotFound, response.CodeWorkspaceNotFound, err.Error())
		default:
			upstreamError(c, err, "switch workspace failed")
		}
		return
	}
	response.OK(c, active)
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	created, err := h.workspaceService.Create(c.Request.Context(), state, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, workspace.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			upstreamError(c, err, "create workspace failed")
		}
		return
	}
	response.OK(c, created)
}

func (h *WorkspaceHandler) Rename(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	var req RenameWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	renamed, err := h.client.RenameWorkspace(c.Request.Context(), state.Credentials(), c.Param("id"), req.Name)
	if err != nil {
		upstreamError(c, err, "rename workspace failed")
		return
	}
	response.OK(c, renamed)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}

	if err := h.client.DeleteWorkspace(c.Request.Context(), state.Credentials(), c.Param("id")); err != nil {
		upstreamError(c, err, "delete workspace failed")
		return
	}
	response.OK(c, gin.H{"deleted_workspace_id": c.Param("id")})
}

func (h *WorkspaceHandler) Members(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}
	if state.ActiveWorkspaceID == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "no active workspace")
		return
	}

	members, err := h.client.ListMembers(c.Request.Context(), state.Credentials(), state.ActiveWorkspaceID)
	if err != nil {
		upstreamError(c, err, "list members failed")
		return
	}
	response.OK(c, members)
}
