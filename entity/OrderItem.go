package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice" gorm:"type:varchar(32)"`
	Qty       int    `json:"qty"`
	Note      string `json:"note"`
	Total     string `json:"total" gorm:"type:varchar(32)"`
}
