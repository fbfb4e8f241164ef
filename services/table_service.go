package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

// TableService owns table CRUD and glues the HTTP surface to the live
// per-table sessions. The session core never touches the store itself;
// status changes flow out through the sink into the table repository.
type TableService struct {
	Repo     *repository.TableRepository
	MenuRepo *repository.MenuRepository
	Sessions *session.Manager
}

func NewTableService(repo *repository.TableRepository, menuRepo *repository.MenuRepository, taxRate decimal.Decimal) *TableService {
	s := &TableService{Repo: repo, MenuRepo: menuRepo}
	s.Sessions = session.NewManager(taxRate, func(tableID uint, st session.Status) error {
		return repo.UpdateStatus(tableID, st.String())
	})
	return s
}

// LoadSessions rebuilds the in-memory sessions from the persisted
// mirror at boot. Carts are live-only and do not survive a restart.
func (s *TableService) LoadSessions() error {
	tables, err := s.Repo.FindAll()
	if err != nil {
		return err
	}
	for _, t := range tables {
		st, err := session.ParseStatus(t.Status)
		if err != nil {
			st = session.StatusAvailable
		}
		s.Sessions.Restore(t.ID, st, t.CustomerName, t.Guests)
	}
	return nil
}

// SessionView is the full per-table payload the dashboard card renders.
type SessionView struct {
	Table         *entity.Table  `json:"table"`
	Status        session.Status `json:"status"`
	CustomerName  string         `json:"customerName"`
	Guests        int            `json:"guests"`
	Lines         []session.Line `json:"lines"`
	Totals        session.Totals `json:"totals"`
	BillGenerated bool           `json:"billGenerated"`
	SplitCount    int            `json:"splitCount"`
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.FindAll()
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

func (s *TableService) Create(t *entity.Table) error {
	if t.Number <= 0 {
		return fmt.Errorf("%w: table number must be positive", session.ErrInvalidArgument)
	}
	if t.Capacity <= 0 {
		t.Capacity = 4
	}
	t.Status = session.StatusAvailable.String()
	t.Guests = 1
	return s.Repo.Create(t)
}

func (s *TableService) Update(id uint, name string, number, capacity int) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if number > 0 {
		t.Number = number
	}
	if capacity > 0 {
		t.Capacity = capacity
	}
	if name != "" {
		t.Name = name
	}
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete refuses to drop an occupied table; free it first.
func (s *TableService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if s.Sessions.Get(id).Status() == session.StatusOccupied {
		return fmt.Errorf("%w: table is occupied", session.ErrInvalidState)
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Sessions.Drop(id)
	return nil
}

func (s *TableService) Session(id uint) (*session.Session, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.Sessions.Get(id), nil
}

func (s *TableService) View(id uint) (*SessionView, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	sess := s.Sessions.Get(id)
	return &SessionView{
		Table:         t,
		Status:        sess.Status(),
		CustomerName:  sess.CustomerName(),
		Guests:        sess.Guests(),
		Lines:         sess.Lines(),
		Totals:        sess.Totals(),
		BillGenerated: sess.BillGenerated(),
		SplitCount:    sess.SplitCount(),
	}, nil
}

func (s *TableService) Occupy(id uint, customerName string, guests int) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	if err := sess.Occupy(customerName, guests); err != nil {
		return err
	}
	return s.saveMirror(sess)
}

// SetStatus drives the manual status override. Moving an occupied table
// off occupied discards the unbilled cart; the discard is logged so the
// loss is visible server-side.
func (s *TableService) SetStatus(id uint, status string) error {
	st, err := session.ParseStatus(status)
	if err != nil {
		return err
	}
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	if st == session.StatusOccupied {
		return fmt.Errorf("%w: occupying requires customer details", session.ErrInvalidArgument)
	}
	if sess.Status() == session.StatusOccupied && !sess.CartEmpty() {
		log.Printf("table %d: status override to %s discards %d cart lines (subtotal %s)",
			id, st, len(sess.Lines()), sess.Totals().Subtotal.String())
	}
	if err := sess.SetStatus(st); err != nil {
		return err
	}
	return s.saveMirror(sess)
}

// AddItem snapshots the menu item into the cart. Only available items
// may be ordered.
func (s *TableService) AddItem(id, menuItemID uint) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	m, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		return mapNotFound(err)
	}
	if !m.IsAvailable {
		return fmt.Errorf("%w: %s is not available", session.ErrInvalidState, m.Name)
	}
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return fmt.Errorf("menu item %d has bad price %q: %w", m.ID, m.Price, err)
	}
	if err := sess.AddItem(session.Item{
		ID:           m.ID,
		Name:         m.Name,
		Price:        price,
		IsVegetarian: m.IsVegetarian,
	}); err != nil {
		return err
	}
	return s.saveMirror(sess)
}

func (s *TableService) ChangeQty(id, menuItemID uint, delta int) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	if err := sess.ChangeQty(menuItemID, delta); err != nil {
		return err
	}
	return s.saveMirror(sess)
}

func (s *TableService) SetNote(id, menuItemID uint, note string) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	return sess.SetNote(menuItemID, note)
}

func (s *TableService) SetSplit(id uint, n int) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	return sess.SetSplit(n)
}

func (s *TableService) GenerateBill(id uint) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	if err := sess.GenerateBill(); err != nil {
		return err
	}
	return s.saveMirror(sess)
}

func (s *TableService) saveMirror(sess *session.Session) error {
	return s.Repo.SaveMirror(sess.TableID(), sess.Status().String(),
		sess.CustomerName(), sess.Guests(), sess.BillGenerated())
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", session.ErrNotFound, err)
	}
	return err
}
