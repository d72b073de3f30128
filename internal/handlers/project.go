package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhpark/devboard/internal/services"
	"github.com/jhpark/devboard/pkg/response"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projects: services.NewProjectService(db),
	}
}

// List returns all projects, most recently updated first
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, projects)
}

// Create creates a new project
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := h.projects.Create(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.CreatedID(c, id)
}

// GetBySlug returns a project and its activity log
// GET /api/projects/:slug
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Param("slug"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}

	logs, err := h.projects.GetLogs(project.ID, 0)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"project": project, "logs": logs})
}

// Update applies a partial update to a project
// PATCH /api/projects/:slug
func (h *ProjectHandler) Update(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Param("slug"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.projects.Update(project.ID, &req); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c)
}

// Delete removes a project and, via cascade, its activity log
// DELETE /api/projects/:slug
func (h *ProjectHandler) Delete(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Param("slug"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}

	if err := h.projects.Delete(project.ID); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c)
}
