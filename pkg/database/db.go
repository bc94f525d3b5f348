package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database file used as the portal's store.
// Foreign keys are enabled so the like association rows follow their
// parent news and users.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
