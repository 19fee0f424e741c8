// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	objectiveController  *controller.ObjectiveController
	valueController      *controller.ValueController
	departmentController *controller.DepartmentController
	chatController       *controller.ChatController
	seedController       *controller.SeedController
	alertController      *controller.AlertController
	chatRateLimiter      *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	objectiveController *controller.ObjectiveController,
	valueController *controller.ValueController,
	departmentController *controller.DepartmentController,
	chatController *controller.ChatController,
	seedController *controller.SeedController,
	alertController *controller.AlertController,
	chatRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		objectiveController:  objectiveController,
		valueController:      valueController,
		departmentController: departmentController,
		chatController:       chatController,
		seedController:       seedController,
		alertController:      alertController,
		chatRateLimiter:      chatRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Reads are public; writes go
// through the operator token check, which is a no-op unless enabled.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	write := r.authMiddleware.Authenticate()

	objectives := v1.Group("/objectives")
	{
		objectives.GET("", r.objectiveController.List)
		objectives.POST("", write, r.objectiveController.Create)
		objectives.POST("/bulk", write, r.objectiveController.BulkCreate)
		objectives.POST("/bulk-delete", write, r.objectiveController.BulkDelete)
		objectives.POST("/reorder", write, r.objectiveController.Reorder)
		objectives.GET("/:id", r.objectiveController.Get)
		objectives.PATCH("/:id", write, r.objectiveController.Update)
		objectives.DELETE("/:id", write, r.objectiveController.Delete)

		// Monthly values nested under their objective
		objectives.GET("/:id/values", r.valueController.List)
		objectives.PUT("/:id/values", write, r.valueController.Upsert)
		objectives.DELETE("/:id/values/:year/:month", write, r.valueController.Delete)
	}

	departments := v1.Group("/departments/:department")
	{
		departments.GET("/objectives", r.departmentController.Objectives)
		departments.GET("/analytics", r.departmentController.Analytics)
		departments.POST("/chat", r.chatRateLimiter.Middleware(), r.chatController.Department)
	}

	v1.POST("/chat", r.chatRateLimiter.Middleware(), r.chatController.Company)

	seed := v1.Group("/seed")
	{
		seed.GET("/scenarios", r.seedController.Scenarios)
		seed.POST("", write, r.seedController.Seed)
	}

	if r.alertController != nil {
		v1.POST("/alerts/expiry-digest", write, r.alertController.ExpiryDigest)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
