package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhpark/devboard/internal/models"
	"github.com/jhpark/devboard/internal/services"
	"github.com/jhpark/devboard/pkg/response"
)

type StatsHandler struct {
	projects *services.ProjectService
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		projects: services.NewProjectService(db),
	}
}

// GetStats returns aggregate project statistics
// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.projects.GetStats()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, stats)
}

// Dashboard returns the project list and aggregate statistics in one
// response. The two queries touch disjoint data, so they run
// concurrently and the handler waits for both.
// GET /api/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	var (
		wg       sync.WaitGroup
		projects []models.Project
		stats    *services.ProjectStats
		listErr  error
		statsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		projects, listErr = h.projects.List()
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.projects.GetStats()
	}()
	wg.Wait()

	if listErr != nil {
		response.ServerError(c, listErr.Error())
		return
	}
	if statsErr != nil {
		response.ServerError(c, statsErr.Error())
		return
	}

	response.Success(c, gin.H{"projects": projects, "stats": stats})
}
