package database

import (
	"fmt"

	"tms-lite/logger"
	"tms-lite/models/catalog"
	"tms-lite/models/driver"
	"tms-lite/models/log"
	"tms-lite/models/shipment"

	"gorm.io/gorm"
)

// Migrate runs auto migration in dependency order and then creates indexes.
func Migrate(db *gorm.DB) error {
	stages := [][]interface{}{
		// Stage 1: referenced by shipments
		{&driver.Driver{}},
		// Stage 2: shipments
		{&shipment.Shipment{}},
		// Stage 3: owned by shipments
		{&shipment.Box{}, &shipment.History{}},
		// Stage 4: independent tables
		{&catalog.Item{}, &log.Log{}},
	}

	for i, models := range stages {
		for _, model := range models {
			if err := db.AutoMigrate(model); err != nil {
				return fmt.Errorf("failed to migrate %T: %w", model, err)
			}
		}
		logger.Debug(fmt.Sprintf("Migration stage %d completed", i+1))
	}

	return createIndexes(db)
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_shipments_status", "CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments(status)"},
		{"idx_shipments_created_at", "CREATE INDEX IF NOT EXISTS idx_shipments_created_at ON shipments(created_at)"},
		{"idx_shipment_histories_created_at", "CREATE INDEX IF NOT EXISTS idx_shipment_histories_created_at ON shipment_histories(created_at)"},
		{"idx_items_brand_popularity", "CREATE INDEX IF NOT EXISTS idx_items_brand_popularity ON items(brand, popularity)"},
		{"idx_logs_status_code", "CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create %s index: %w", idx.name, err)
		}
	}
	return nil
}
