package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/orca"
	"orcabase-console/internal/pkg/jwtutil"
	"orcabase-console/internal/session"
	"orcabase-console/internal/transport/http/middleware"
	"orcabase-console/internal/transport/http/response"
)

type AuthHandler struct {
	client *orca.Client
	store  session.Store
	cookie middleware.CookieConfig
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

func NewAuthHandler(client *orca.Client, store session.Store, cookie middleware.CookieConfig) *AuthHandler {
	return &AuthHandler{client: client, store: store, cookie: cookie}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.client.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if orca.IsStatus(err, http.StatusUnauthorized) {
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, "invalid email or password")
			return
		}
		upstreamError(c, err, "login failed")
		return
	}

	if err := h.openSession(c, result); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "open session failed")
		return
	}
	response.OK(c, gin.H{"user": result.User})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.client.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		upstreamError(c, err, "signup failed")
		return
	}

	if err := h.openSession(c, result); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "open session failed")
		return
	}
	response.OK(c, gin.H{"user": result.User})
}

// Logout clears the console session and cookie. The bearer token is simply
// forgotten; no revocation call is made to the core API.
func (h *AuthHandler) Logout(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), state.ID); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "clear session failed")
		return
	}
	h.cookie.Expire(c)
	response.OK(c, gin.H{"logged_out": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	state, ok := getStateFromContext(c)
	if !ok {
		return
	}
	response.OK(c, gin.H{"user": state.User, "active_workspace_id": state.ActiveWorkspaceID})
}

// OAuthCallback decodes the provider token payload WITHOUT verifying its
// signature, purely to pre-populate name/email on the signup form. The value
// never drives an authorization decision.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing token")
		return
	}

	identity, err := jwtutil.DecodeIdentityClaims(token)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unreadable identity token")
		return
	}
	response.OK(c, gin.H{"email": identity.Email, "name": identity.Name})
}

func (h *AuthHandler) openSession(c *gin.Context, result *orca.AuthResult) error {
	state := session.NewState()
	state.SetAuth(result.User, result.AccessToken)
	if err := h.store.Put(c.Request.Context(), state); err != nil {
		return err
	}
	return h.cookie.Issue(c, state.ID)
}
