package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

// TransactionFilter narrows the history view; zero values mean "any".
type TransactionFilter struct {
	Type   string
	Status string
	From   time.Time
	To     time.Time
	Search string
}

func (r *TransactionRepository) Filter(f TransactionFilter) ([]entity.Transaction, error) {
	q := r.DB.Model(&entity.Transaction{}).Order("date DESC")
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("date < ?", f.To)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("customer_name LIKE ? OR reference LIKE ? OR description LIKE ?", like, like, like)
	}
	var out []entity.Transaction
	err := q.Find(&out).Error
	return out, err
}

func (r *TransactionRepository) ListSince(from time.Time) ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Where("date >= ?", from).Find(&out).Error
	return out, err
}

func (r *TransactionRepository) ListInRange(from, to time.Time) ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Where("date >= ? AND date < ?", from, to).Find(&out).Error
	return out, err
}
