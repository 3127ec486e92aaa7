package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"florisys/entities"
)

// OpenSQLite opens the database and migrates the schema. Foreign keys are
// switched on so bed and spatial-map rows cascade when their parent goes.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plot{},
		&entities.Bed{},
		&entities.SpatialMap{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
