package repository

import (
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) FindAll() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// UpdateStatus is the status sink target: it keeps the stored table row
// in step with the live session.
func (r *TableRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Update("status", status).Error
}

// SaveMirror persists the rest of the session mirror (who is seated,
// whether a bill is out) alongside the status.
func (r *TableRepository) SaveMirror(id uint, status, customerName string, guests int, billGenerated bool) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(map[string]any{
		"status":         status,
		"customer_name":  customerName,
		"guests":         guests,
		"bill_generated": billGenerated,
	}).Error
}

func (r *TableRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Table{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *TableRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Table{}).Count(&n).Error
	return n, err
}
