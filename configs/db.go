package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Admin{},
		&entity.Table{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Transaction{},
	)
}
