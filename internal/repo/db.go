package repo

import (
	"BrainDump/internal/model"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и прогоняет миграции.
// Диалект выбирается по DSN: postgres:// — PostgreSQL, иначе SQLite
// (через modernc.org/sqlite, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = gormpostgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "braindump.db"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Миграции для всех серверных моделей
	if err := db.AutoMigrate(&model.User{}, &model.Content{}, &model.ShareLink{}); err != nil {
		return nil, err
	}

	return db, nil
}
