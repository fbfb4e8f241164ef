package repository

import (
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByEmail(email string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
