package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price" gorm:"type:varchar(32)"` // decimal string
	IsAvailable bool   `json:"isAvailable"`
	IsVegetarian bool  `json:"isVegetarian"`
	PhotoURL    string `json:"photoUrl"`

	OrderItems []OrderItem `json:"-"`
}
