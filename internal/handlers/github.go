package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhpark/devboard/internal/services"
	"github.com/jhpark/devboard/pkg/response"
)

type GitHubHandler struct {
	projects *services.ProjectService
	github   *services.GitHubService
}

func NewGitHubHandler(db *gorm.DB, github *services.GitHubService) *GitHubHandler {
	return &GitHubHandler{
		projects: services.NewProjectService(db),
		github:   github,
	}
}

// GetProjectRepo returns the live GitHub snapshot (summary, recent
// commits, README) for a project's linked repository
// GET /api/github/:slug
func (h *GitHubHandler) GetProjectRepo(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Param("slug"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}
	if project.GithubURL == "" {
		response.BadRequest(c, "No GitHub URL found for this project")
		return
	}

	ctx := c.Request.Context()
	stats := h.github.GetStats(ctx, project.GithubURL)
	readme := h.github.GetReadme(ctx, project.GithubURL)

	response.Success(c, gin.H{
		"repo":    stats.Repo,
		"commits": stats.Commits,
		"readme":  readme,
	})
}

// ListUserRepos returns the authenticated user's repositories for the
// import picker
// GET /api/github/repos
func (h *GitHubHandler) ListUserRepos(c *gin.Context) {
	repos := h.github.ListUserRepos(c.Request.Context())
	response.Success(c, repos)
}
