package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SineMag/Eatery/entity"
)

func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.KVRecord{},
	)
}
