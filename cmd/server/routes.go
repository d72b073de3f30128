package main

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhpark/devboard/internal/handlers"
	"github.com/jhpark/devboard/internal/middleware"
	"github.com/jhpark/devboard/internal/services"
	"github.com/jhpark/devboard/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, db *gorm.DB, github *services.GitHubService) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "devboard"})
	})

	projectHandler := handlers.NewProjectHandler(db)
	statsHandler := handlers.NewStatsHandler(db)
	githubHandler := handlers.NewGitHubHandler(db, github)

	// Limit the GitHub proxy routes; every hit is a live upstream call
	githubLimiter := middleware.NewRateLimiter(5, 10)

	api := r.Group("/api")
	{
		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:slug", projectHandler.GetBySlug)
		api.PATCH("/projects/:slug", projectHandler.Update)
		api.DELETE("/projects/:slug", projectHandler.Delete)

		api.GET("/stats", statsHandler.GetStats)
		api.GET("/dashboard", statsHandler.Dashboard)

		gh := api.Group("/github", githubLimiter.Middleware())
		{
			gh.GET("/repos", githubHandler.ListUserRepos)
			gh.GET("/:slug", githubHandler.GetProjectRepo)
		}
	}
}
