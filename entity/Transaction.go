package entity

import (
	"time"

	"gorm.io/gorm"
)

type Transaction struct {
	gorm.Model
	TransactionID string    `json:"transactionId" gorm:"uniqueIndex"`
	Date          time.Time `json:"date"`
	CustomerName  string    `json:"customerName"`
	Amount        string    `json:"amount" gorm:"type:varchar(32)"`
	Type          string    `json:"type"`   // "sale" | "refund"
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"` // "completed" | "pending" | "failed"
	Reference     string    `json:"reference"`
	Description   string    `json:"description"`
}
