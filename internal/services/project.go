package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhpark/devboard/internal/models"
	"gorm.io/gorm"
)

const defaultLogLimit = 50

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof=active development maintenance archived"`
	TechStack   []string `json:"tech_stack"`
	GithubURL   string   `json:"github_url"`
	VercelURL   string   `json:"vercel_url"`
	LocalPath   string   `json:"local_path"`
}

type UpdateProjectRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status" binding:"omitempty,oneof=active development maintenance archived"`
	TechStack   *[]string `json:"tech_stack"`
	GithubURL   *string   `json:"github_url"`
	VercelURL   *string   `json:"vercel_url"`
	LocalPath   *string   `json:"local_path"`
}

type ProjectStats struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	RecentActivity []ActivityEntry  `json:"recentActivity"`
}

// ActivityEntry is a log row joined with its owning project's name.
type ActivityEntry struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"created_at"`
	ProjectName string    `json:"project_name"`
}

// List returns all projects, most recently updated first.
func (s *ProjectService) List() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := s.db.Order("updated_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetBySlug returns the project with the given slug, or (nil, nil)
// when no project matches. Absence is a normal result, not an error.
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := s.db.Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts a new project and appends a project_created log
// entry in the same transaction. Returns the new project's id.
// A duplicate slug surfaces the storage layer's uniqueness error.
func (s *ProjectService) Create(req *CreateProjectRequest) (uint, error) {
	project := models.Project{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Status:      req.Status,
		TechStack:   models.TechStack(req.TechStack),
		GithubURL:   req.GithubURL,
		VercelURL:   req.VercelURL,
		LocalPath:   req.LocalPath,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return addProjectLog(tx, project.ID, models.ActionProjectCreated,
			fmt.Sprintf("project %q created", project.Name))
	})
	if err != nil {
		return 0, err
	}
	return project.ID, nil
}

// Update applies only the fields present in the request, refreshes
// updated_at, and appends a project_updated log entry. When the
// request carries no recognized fields the call is a silent no-op and
// no log entry is written.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) error {
	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.TechStack != nil {
		updates["tech_stack"] = models.TechStack(*req.TechStack)
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.VercelURL != nil {
		updates["vercel_url"] = *req.VercelURL
	}
	if req.LocalPath != nil {
		updates["local_path"] = *req.LocalPath
	}

	if len(updates) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{ID: id}).Updates(updates).Error; err != nil {
			return err
		}
		return addProjectLog(tx, id, models.ActionProjectUpdated, "project details updated")
	})
}

// Delete removes the project; the schema's cascade removes its log
// rows. Deleting an id that does not exist succeeds silently.
func (s *ProjectService) Delete(id uint) error {
	return s.db.Delete(&models.Project{}, id).Error
}

// GetLogs returns the project's activity log, most recent first,
// capped at limit (default 50).
func (s *ProjectService) GetLogs(projectID uint, limit int) ([]models.ProjectLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logs := make([]models.ProjectLog, 0)
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// GetStats returns the total project count, counts grouped by status,
// and the 10 most recent log entries across all projects joined with
// their owning project's name.
func (s *ProjectService) GetStats() (*ProjectStats, error) {
	stats := &ProjectStats{ByStatus: make(map[string]int64)}

	if err := s.db.Model(&models.Project{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var counts []struct {
		Status string
		Count  int64
	}
	err := s.db.Model(&models.Project{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		stats.ByStatus[c.Status] = c.Count
	}

	stats.RecentActivity = []ActivityEntry{}
	err = s.db.Model(&models.ProjectLog{}).
		Select("project_logs.id, project_logs.project_id, project_logs.action, project_logs.details, project_logs.created_at, projects.name AS project_name").
		Joins("JOIN projects ON projects.id = project_logs.project_id").
		Order("project_logs.created_at DESC").
		Limit(10).
		Scan(&stats.RecentActivity).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func addProjectLog(tx *gorm.DB, projectID uint, action, details string) error {
	return tx.Create(&models.ProjectLog{
		ProjectID: projectID,
		Action:    action,
		Details:   details,
	}).Error
}
