// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"path/filepath"

	"menudash/internal/delivery/http/middleware"
	"menudash/internal/delivery/http/router/handler"
	"menudash/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	MenuHandler       *handler.MenuHandler
	CategoryHandler   *handler.CategoryHandler
	SettingsHandler   *handler.SettingsHandler
	UserHandler       *handler.UserHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	QRCodeHandler     *handler.QRCodeHandler
	PublicMenuHandler *handler.PublicMenuHandler
	PageHandler       *handler.PageHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	menuHandler       *handler.MenuHandler
	categoryHandler   *handler.CategoryHandler
	settingsHandler   *handler.SettingsHandler
	userHandler       *handler.UserHandler
	analyticsHandler  *handler.AnalyticsHandler
	qrCodeHandler     *handler.QRCodeHandler
	publicMenuHandler *handler.PublicMenuHandler
	pageHandler       *handler.PageHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		menuHandler:       params.MenuHandler,
		categoryHandler:   params.CategoryHandler,
		settingsHandler:   params.SettingsHandler,
		userHandler:       params.UserHandler,
		analyticsHandler:  params.AnalyticsHandler,
		qrCodeHandler:     params.QRCodeHandler,
		publicMenuHandler: params.PublicMenuHandler,
		pageHandler:       params.PageHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session, authenticate)
	}

	// Menu items: reads are public, writes need a session
	menuGroup := api.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListItems)
		menuGroup.POST("", r.menuHandler.CreateItem, authenticate)
		menuGroup.POST("/reorder", r.menuHandler.ReorderItems, authenticate)
		menuGroup.GET("/:id", r.menuHandler.GetItem)
		menuGroup.PUT("/:id", r.menuHandler.UpdateItem, authenticate)
		menuGroup.DELETE("/:id", r.menuHandler.DeleteItem, authenticate)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory, authenticate)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory, authenticate)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, authenticate)
	}

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PUT("", r.settingsHandler.UpdateSettings, authenticate)
	}

	// User management; updates are also open to the account owner
	usersGroup := api.Group("/users")
	usersGroup.Use(authenticate)
	{
		usersGroup.GET("", r.userHandler.ListUsers, adminOnly)
		usersGroup.POST("", r.userHandler.CreateUser, adminOnly)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, adminOnly)
	}

	api.GET("/analytics", r.analyticsHandler.GetAnalytics, authenticate)

	qrGroup := api.Group("/qr")
	qrGroup.Use(authenticate)
	{
		qrGroup.POST("", r.qrCodeHandler.GenerateDataURL)
		qrGroup.GET("", r.qrCodeHandler.DownloadPNG)
	}

	api.GET("/public/menu", r.publicMenuHandler.GetPublicMenu)
}

// RegisterPages serves the prebuilt frontend behind the page guard.
func (r *router) RegisterPages(e *echo.Echo) {
	if !r.pageHandler.Enabled() {
		return
	}

	guard := r.authMiddleware.PageGuard

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, middleware.DashboardPath)
	})
	e.GET(middleware.LoginPath, r.pageHandler.Page("login"), guard)
	e.GET(middleware.DashboardPath, r.pageHandler.Page("dashboard"), guard)
	e.GET(middleware.DashboardPath+"/*", r.pageHandler.Page("dashboard"), guard)
	e.GET("/menu/view", r.pageHandler.Page("menu"))

	e.Static("/assets", filepath.Join(r.pageHandler.Root(), "assets"))
}
