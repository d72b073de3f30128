package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Project statuses
const (
	StatusActive      = "active"
	StatusDevelopment = "development"
	StatusMaintenance = "maintenance"
	StatusArchived    = "archived"
)

// TechStack is an ordered list of technology names stored as a JSON
// text column, e.g. ["Go","Postgres"].
type TechStack []string

// Value serializes the stack to JSON for storage.
func (ts TechStack) Value() (driver.Value, error) {
	if ts == nil {
		ts = TechStack{}
	}
	b, err := json.Marshal(ts)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the stack from its stored JSON text. An empty or
// NULL column scans to an empty stack.
func (ts *TechStack) Scan(value interface{}) error {
	if value == nil {
		*ts = TechStack{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tech_stack column type %T", value)
	}

	if len(data) == 0 {
		*ts = TechStack{}
		return nil
	}
	return json.Unmarshal(data, ts)
}

// Project represents a tracked piece of software.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:200;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:50;not null;default:development;check:status IN ('active','development','maintenance','archived')" json:"status"`
	TechStack   TechStack `gorm:"type:text" json:"tech_stack"`
	GithubURL   string    `gorm:"size:500" json:"github_url"`
	VercelURL   string    `gorm:"size:500" json:"vercel_url"`
	LocalPath   string    `gorm:"size:500" json:"local_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Logs []ProjectLog `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Project) TableName() string { return "projects" }
