package repository

import (
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll(category string, availableOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Order("category ASC, name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) UpdateAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("is_available", available).Error
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}
