package models

import (
	"path/filepath"
	"testing"

	"github.com/jhpark/devboard/internal/config"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"bare file path", "devboard.db", "devboard.db?_foreign_keys=on"},
		{"existing query params", "file:devboard.db?cache=shared", "file:devboard.db?cache=shared&_foreign_keys=on"},
		{"caller already set it", "devboard.db?_foreign_keys=on", "devboard.db?_foreign_keys=on"},
		{"caller turned it off", "devboard.db?_foreign_keys=off", "devboard.db?_foreign_keys=off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqliteDSN(tt.dsn); got != tt.want {
				t.Errorf("sqliteDSN(%q) = %q, expected %q", tt.dsn, got, tt.want)
			}
		})
	}
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	err := InitDB(&config.DatabaseConfig{Driver: "oracle", DSN: "whatever"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

// The foreign_keys pragma is per-connection in sqlite, so the cascade
// must survive the pool handing statements to fresh connections.
func TestInitDB_CascadeSurvivesConnectionCycling(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "devboard.db")
	if err := InitDB(&config.DatabaseConfig{Driver: "sqlite", DSN: dsn}); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := AutoMigrate(); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// force every statement onto a fresh pool connection
	sqlDB.SetMaxIdleConns(0)

	project := Project{Name: "Widget", Slug: "widget"}
	if err := DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	log := ProjectLog{ProjectID: project.ID, Action: ActionProjectCreated, Details: "project \"Widget\" created"}
	if err := DB.Create(&log).Error; err != nil {
		t.Fatalf("failed to create log: %v", err)
	}

	if err := DB.Delete(&Project{}, project.ID).Error; err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}

	var orphans int64
	if err := DB.Model(&ProjectLog{}).Where("project_id = ?", project.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("failed to count logs: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected cascade to remove logs, found %d orphaned rows", orphans)
	}
}
