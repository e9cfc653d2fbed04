package repository

import "gorm.io/gorm"

// Migrate applies the schema for every table this package owns. The row
// models carry the column tags and indexes, so they drive the migration.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&hotelModel{},
		&roomModel{},
		&bookingModel{},
		&reviewModel{},
	)
}
