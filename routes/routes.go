package routes

import (
	"net/http"
	"time"

	"weddingplanner/handlers"
	"weddingplanner/middleware"
	"weddingplanner/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterPlannerRoutes sets up the endpoints for the planning engine.
func RegisterPlannerRoutes(r *gin.Engine, ph *handlers.PlannerHandler) {
	plannerGroup := r.Group("/api/planner")
	{
		plannerGroup.Use(middleware.RateLimitMiddleware())
		plannerGroup.POST("/session", ph.StartSession)
		plannerGroup.GET("/session/:sessionID", ph.GetSession)
		plannerGroup.DELETE("/session/:sessionID", ph.EndSession)
		plannerGroup.GET("/session/:sessionID/browse/:category", ph.BrowseCategory)
		plannerGroup.GET("/session/:sessionID/full", ph.FullPlanner)
		plannerGroup.POST("/session/:sessionID/select", ph.SelectOption)
		plannerGroup.POST("/session/:sessionID/advance", ph.Advance)
		plannerGroup.POST("/session/:sessionID/retreat", ph.Retreat)
		plannerGroup.POST("/session/:sessionID/jump", ph.JumpTo)
		plannerGroup.GET("/session/:sessionID/plan", ph.PlanView)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ph *handlers.PlannerHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPlannerRoutes(r, ph)
}
