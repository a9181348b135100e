package api

import (
	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/config"
	"ecocollect-backend/internal/database"
)

// Shared handler dependencies, wired once at startup
var (
	authService      *auth.Service
	oidcClient       *auth.OIDCClient
	cfg              *config.Config
	userRepo         *database.UserRepo
	taskRepo         *database.TaskRepo
	notificationRepo *database.NotificationRepo
	rewardRepo       *database.RewardRepo
	auditRepo        *database.AuditRepo
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api *echo.Group, authSvc *auth.Service, oidc *auth.OIDCClient, conf *config.Config) {
	authService = authSvc
	oidcClient = oidc
	cfg = conf
	userRepo = database.NewUserRepo()
	taskRepo = database.NewTaskRepo()
	notificationRepo = database.NewNotificationRepo()
	rewardRepo = database.NewRewardRepo()
	auditRepo = database.NewAuditRepo()

	// Health check (public)
	api.GET("/health", healthCheck)

	// User auth routes (public - no auth required for login)
	authGroup := api.Group("/auth")
	authGroup.POST("/register", registerHandler, auth.LoginRateLimiter.Middleware())
	authGroup.POST("/login", loginHandler, auth.LoginRateLimiter.Middleware())
	authGroup.POST("/logout", logoutHandler)
	authGroup.GET("/check", checkAuthHandler)
	authGroup.GET("/sso/login", ssoLoginHandler)
	authGroup.GET("/sso/callback", ssoCallbackHandler)

	// Protected auth routes
	authProtected := authGroup.Group("")
	authProtected.Use(auth.RequireUser(authSvc))
	authProtected.PUT("/password", updatePasswordHandler)

	// Admin auth routes, mirroring the user surface
	adminAuth := api.Group("/admin/auth")
	adminAuth.POST("/login", adminLoginHandler, auth.LoginRateLimiter.Middleware())
	adminAuth.POST("/logout", adminLogoutHandler)
	adminAuth.GET("/check", adminCheckHandler)

	// Waste-collection reports (user scope)
	tasks := api.Group("/tasks")
	tasks.Use(auth.RequireUser(authSvc))
	tasks.GET("", listTasksHandler)
	tasks.POST("", createTaskHandler)
	tasks.GET("/:id", getTaskHandler)
	tasks.DELETE("/:id", deleteTaskHandler)

	// Notifications (user scope)
	notifications := api.Group("/notifications")
	notifications.Use(auth.RequireUser(authSvc))
	notifications.GET("", listNotificationsHandler)
	notifications.PATCH("/:id/read", markNotificationReadHandler)

	// Rewards ledger (user scope)
	rewards := api.Group("/rewards")
	rewards.Use(auth.RequireUser(authSvc))
	rewards.GET("", listRewardsHandler)

	// Photo uploads (user scope)
	uploads := api.Group("/uploads")
	uploads.Use(auth.RequireUser(authSvc))
	uploads.POST("", uploadPhotoHandler)

	// AI assistant proxy (user scope)
	chat := api.Group("/chat")
	chat.Use(auth.RequireUser(authSvc))
	chat.POST("", chatHandler)
	// WebSocket handshake authenticates inside the handler
	api.GET("/chat/ws", chatWebSocketHandler)

	// Admin management surface
	admin := api.Group("/admin")
	admin.Use(auth.RequireAdmin(authSvc))
	admin.GET("/tasks", adminListTasksHandler)
	admin.PATCH("/tasks/:id/status", adminUpdateTaskStatusHandler)
	admin.POST("/rewards", adminGrantRewardHandler)
	admin.GET("/audit", adminListAuditHandler)
}
