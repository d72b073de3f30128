package models

import "time"

// Log actions written by the project service
const (
	ActionProjectCreated = "project_created"
	ActionProjectUpdated = "project_updated"
)

// ProjectLog is an append-only activity trail entry for a project.
// Rows are never mutated and are removed only by the cascade when the
// owning project is deleted.
type ProjectLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"index;not null" json:"project_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ProjectLog) TableName() string { return "project_logs" }
