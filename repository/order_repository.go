package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create runs inside the caller's transaction so order and transaction
// records commit together.
func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) List(limit, offset int) ([]entity.Order, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []entity.Order
	err := r.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListSince feeds the monthly chart; only timestamps are needed but the
// rows are small enough to fetch whole.
func (r *OrderRepository) ListSince(from time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("created_at >= ?", from).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountInRange(from, to time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}
