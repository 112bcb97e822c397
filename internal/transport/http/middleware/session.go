package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/pkg/jwtutil"
	"orcabase-console/internal/session"
	"orcabase-console/internal/transport/http/response"
)

const ContextStateKey = "console_state"

// CookieConfig describes the signed session cookie. The cookie carries only
// the session id; the core API bearer token stays server-side.
type CookieConfig struct {
	Name   string
	Secret string
	TTL    time.Duration
	Secure bool
}

// Issue writes a fresh session cookie for the given session id.
func (cc CookieConfig) Issue(c *gin.Context, sessionID string) error {
	token, err := jwtutil.GenerateSessionToken(cc.Secret, cc.TTL, sessionID)
	if err != nil {
		return err
	}
	c.SetCookie(cc.Name, token, int(cc.TTL.Seconds()), "/", "", cc.Secure, true)
	return nil
}

// Expire removes the session cookie.
func (cc CookieConfig) Expire(c *gin.Context) {
	c.SetCookie(cc.Name, "", -1, "/", "", cc.Secure, true)
}

// RequireSession loads the authenticated session state for the request.
// Any missing, invalid or expired cookie is treated the same way: no session.
func RequireSession(store session.Store, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookie.Name)
		if err != nil || raw == "" {
			response.Error(c, 401, response.CodeUnauthorized, "not signed in")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseSessionToken(cookie.Secret, raw)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid session")
			c.Abort()
			return
		}

		state, ok, err := store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.Error(c, 500, response.CodeInternalServer, "load session failed")
			c.Abort()
			return
		}
		if !ok || !state.Authenticated() {
			response.Error(c, 401, response.CodeUnauthorized, "session expired")
			c.Abort()
			return
		}

		c.Set(ContextStateKey, state)
		c.Next()
	}
}

// StateFromContext returns the session state set by RequireSession.
func StateFromContext(c *gin.Context) (*session.State, bool) {
	value, exists := c.Get(ContextStateKey)
	if !exists {
		return nil, false
	}
	state, ok := value.(*session.State)
	return state, ok
}
