package entity

import (
	"gorm.io/gorm"
)

// Order is the record written once when a table is checked out; it is
// never updated afterwards.
type Order struct {
	gorm.Model
	TableID      uint   `json:"tableId"`
	Table        Table  `json:"-"`
	TableNumber  int    `json:"tableNumber"`
	CustomerName string `json:"customerName"`
	Guests       int    `json:"guests"`

	Subtotal   string `json:"subtotal" gorm:"type:varchar(32)"`
	Tax        string `json:"tax" gorm:"type:varchar(32)"`
	Total      string `json:"total" gorm:"type:varchar(32)"`
	SplitCount int    `json:"splitCount"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
