package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"orcabase-console/internal/bootstrap"
	"orcabase-console/internal/chat"
	"orcabase-console/internal/transport/http/handler"
	"orcabase-console/internal/transport/http/middleware"
	"orcabase-console/internal/workspace"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)

	// Marketing pages plus the dashboard shell; the dashboard pages talk to
	// the /app/api endpoints below.
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/pricing", "web/pricing.html")
	router.StaticFile("/login", "web/login.html")
	router.StaticFile("/signup", "web/signup.html")
	router.StaticFile("/dashboard", "web/dashboard.html")
	router.StaticFile("/dashboard/documents", "web/documents.html")
	router.StaticFile("/dashboard/chat", "web/chat.html")
	router.StaticFile("/dashboard/database", "web/database.html")
	router.StaticFile("/dashboard/team", "web/team.html")
	router.StaticFile("/dashboard/settings", "web/settings.html")
	router.Static("/static", "web/static")
	router.GET("/healthz", healthHandler.Check)

	cookie := middleware.CookieConfig{
		Name:   app.Config.Session.CookieName,
		Secret: app.Config.Session.CookieSecret,
		TTL:    time.Duration(app.Config.Session.TTLMinutes) * time.Minute,
		Secure: app.Config.Session.Secure,
	}

	workspaceService := workspace.NewService(app.Orca, app.Sessions)
	chatService := chat.NewService(app.Orca, app.Sessions)

	authHandler := handler.NewAuthHandler(app.Orca, app.Sessions, cookie)
	workspaceHandler := handler.NewWorkspaceHandler(app.Orca, workspaceService)
	documentsHandler := handler.NewDocumentsHandler(app.Orca)
	chatHandler := handler.NewChatHandler(chatService)
	tablesHandler := handler.NewTablesHandler(app.Orca)
	teamHandler := handler.NewTeamHandler(app.Orca)
	accountHandler := handler.NewAccountHandler(app.Orca)
	conversationsHandler := handler.NewConversationsHandler(app.Orca)

	api := router.Group("/app/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.GET("/oauth/callback", authHandler.OAuthCallback)

	// Widget endpoints authenticate by public API key, not console session.
	widgetGroup := api.Group("/widget/conversations")
	widgetGroup.POST("", conversationsHandler.Start)
	widgetGroup.GET("/:id/messages", conversationsHandler.Messages)
	widgetGroup.POST("/:id/messages", conversationsHandler.Post)

	authed := api.Group("")
	authed.Use(middleware.RequireSession(app.Sessions, cookie))

	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)

	workspaceGroup := authed.Group("/workspaces")
	workspaceGroup.GET("", workspaceHandler.List)
	workspaceGroup.POST("", workspaceHandler.Create)
	workspaceGroup.POST("/switch", workspaceHandler.Switch)
	workspaceGroup.PATCH("/:id", workspaceHandler.Rename)
	workspaceGroup.DELETE("/:id", workspaceHandler.Delete)
	workspaceGroup.GET("/members", workspaceHandler.Members)

	documentsGroup := authed.Group("/documents")
	documentsGroup.GET("", documentsHandler.List)
	documentsGroup.POST("", documentsHandler.Upload)
	documentsGroup.DELETE("/:id", documentsHandler.Delete)
	documentsGroup.GET("/analytics", documentsHandler.Analytics)

	chatGroup := authed.Group("/chat")
	chatGroup.POST("/messages", chatHandler.Send)
	chatGroup.GET("/history", chatHandler.History)
	chatGroup.POST("/new", chatHandler.NewChat)
	chatGroup.GET("/sessions", chatHandler.ListSessions)
	chatGroup.POST("/approve", chatHandler.Approve)
	chatGroup.POST("/reject", chatHandler.Reject)
	chatGroup.PUT("/web-search", chatHandler.SetWebSearch)

	dbGroup := authed.Group("/db")
	dbGroup.POST("/agent/register", tablesHandler.RegisterAgent)
	dbGroup.POST("/agent/test", tablesHandler.TestAgent)
	dbGroup.POST("/agent/connect", tablesHandler.ConnectAgent)
	dbGroup.POST("/agent/sync-schema", tablesHandler.SyncSchema)
	dbGroup.GET("/tables", tablesHandler.List)
	dbGroup.PATCH("/tables/access", tablesHandler.SetAccess)

	teamGroup := authed.Group("/invites")
	teamGroup.POST("", teamHandler.CreateInvite)
	teamGroup.GET("", teamHandler.ListInvites)
	teamGroup.POST("/:id/accept", teamHandler.AcceptInvite)

	authed.GET("/billing", accountHandler.Billing)
	authed.GET("/audit-logs", accountHandler.AuditLog)

	adminGroup := authed.Group("/admin/conversations")
	adminGroup.GET("", conversationsHandler.AdminList)
	adminGroup.POST("/:id/messages", conversationsHandler.AdminReply)

	return router
}
