package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number   int    `json:"number" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`

	// mirror of the live session, written by the status sink
	Status        string `json:"status"`
	CustomerName  string `json:"customerName"`
	Guests        int    `json:"guests"`
	BillGenerated bool   `json:"billGenerated"`

	Orders []Order `json:"-"`
}
