package repo

import (
	"strings"

	"HeritagePartage/internal/model"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB opens the database behind the DSN and runs migrations.
// A postgres:// DSN selects the postgres driver; anything else is treated as
// a SQLite file path (modernc.org/sqlite, no cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = gormpostgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Photo{},
		&model.Comment{},
		&model.Preference{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
