package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(category string, availableOnly bool) ([]entity.MenuItem, error) {
	return s.Repo.FindAll(category, availableOnly)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return item, nil
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	if err := validatePrice(item.Price); err != nil {
		return err
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem) error {
	if err := validatePrice(item.Price); err != nil {
		return err
	}
	return s.Repo.Update(item)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.UpdateAvailability(id, available)
}

func validatePrice(p string) error {
	d, err := decimal.NewFromString(p)
	if err != nil {
		return fmt.Errorf("%w: bad price %q", session.ErrInvalidArgument, p)
	}
	if d.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", session.ErrInvalidArgument)
	}
	return nil
}
