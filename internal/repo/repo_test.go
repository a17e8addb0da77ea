package repo

import (
	"fmt"
	"strings"
	"testing"

	"HeritagePartage/internal/model"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite (modernc.org/sqlite) for repository
// tests. The database is named after the test so parallel packages and
// repeated runs stay isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Photo{},
		&model.Comment{},
		&model.Preference{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
