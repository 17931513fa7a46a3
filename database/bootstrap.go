package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmdesk/entities"
)

// OpenSQLite opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&entities.Task{},
		&entities.Supervisor{},
		&entities.Plot{},
		&entities.InventoryItem{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	if err := normalizeTaskStatuses(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// normalizeTaskStatuses rewrites rows written before statuses were a closed
// set ("completed", "in_progress", ...) to their canonical spelling.
func normalizeTaskStatuses(db *gorm.DB) error {
	var raw []string
	if err := db.Model(&entities.Task{}).Distinct().Pluck("status", &raw).Error; err != nil {
		return fmt.Errorf("scan statuses: %w", err)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range raw {
			canon, err := entities.ParseTaskStatus(s)
			if err != nil {
				// unknown values are left for an operator to fix
				continue
			}
			if string(canon) == s {
				continue
			}
			if err := tx.Model(&entities.Task{}).Where("status = ?", s).Update("status", canon).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
