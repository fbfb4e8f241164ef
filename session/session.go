package session

import (
	"fmt"
	"strings"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/billing"
	"github.com/shopspring/decimal"
)

// StatusSink is the persistence collaborator notified on every status
// transition so the table record in the store stays in step with the
// live session. A sink error aborts the transition; the session is left
// untouched.
type StatusSink func(tableID uint, status Status) error

// Session is the live, in-memory order/billing state of one table. It
// does not own persistence; finalize hands a snapshot back to the caller
// for that.
type Session struct {
	tableID       uint
	status        Status
	customerName  string
	guests        int
	cart          Cart
	billGenerated bool
	splitCount    int

	taxRate decimal.Decimal
	sink    StatusSink
}

// Totals are the derived values recomputed on every cart mutation.
// PerGuest is zero unless the table hosts more than one guest.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	PerGuest decimal.Decimal `json:"perGuest"`
}

// BillSnapshot is what Finalize hands to the caller for persistence.
type BillSnapshot struct {
	TableID      uint
	CustomerName string
	Guests       int
	SplitCount   int
	Lines        []Line
	Totals       Totals
}

func New(tableID uint, taxRate decimal.Decimal, sink StatusSink) *Session {
	return &Session{
		tableID:    tableID,
		status:     StatusAvailable,
		guests:     1,
		splitCount: 1,
		taxRate:    taxRate,
		sink:       sink,
	}
}

func (s *Session) TableID() uint        { return s.tableID }
func (s *Session) Status() Status       { return s.status }
func (s *Session) CustomerName() string { return s.customerName }
func (s *Session) Guests() int          { return s.guests }
func (s *Session) BillGenerated() bool  { return s.billGenerated }
func (s *Session) SplitCount() int      { return s.splitCount }
func (s *Session) Lines() []Line        { return s.cart.Lines() }
func (s *Session) CartEmpty() bool      { return s.cart.IsEmpty() }

func (s *Session) Totals() Totals {
	sub := s.cart.Subtotal()
	tax := billing.Tax(sub, s.taxRate)
	total := billing.Total(sub, tax)
	t := Totals{Subtotal: sub, Tax: tax, Total: total, PerGuest: decimal.Zero}
	if s.guests > 1 {
		if share, err := billing.PerGuestShare(total, s.splitCount, s.guests); err == nil {
			t.PerGuest = share
		}
	}
	return t
}

// Occupy enters the occupied state with fresh customer metadata and an
// empty cart. Re-occupying an already occupied table is a no-op.
func (s *Session) Occupy(customerName string, guests int) error {
	if s.status == StatusOccupied {
		return nil
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidArgument)
	}
	if guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidArgument)
	}
	if err := s.notify(StatusOccupied); err != nil {
		return err
	}
	s.status = StatusOccupied
	s.customerName = customerName
	s.guests = guests
	s.cart.clear()
	s.splitCount = 1
	s.billGenerated = false
	return nil
}

// SetStatus handles the non-occupying transitions. Moving an occupied
// table back to available or reserved discards any unbilled cart; the
// caller is expected to surface that (see TableService). Selecting the
// current status is a no-op. Entering occupied needs customer metadata
// and must go through Occupy.
func (s *Session) SetStatus(next Status) error {
	if next == s.status {
		return nil
	}
	if next == StatusOccupied {
		return fmt.Errorf("%w: occupying requires customer details", ErrInvalidArgument)
	}
	if err := s.notify(next); err != nil {
		return err
	}
	s.status = next
	s.customerName = ""
	s.guests = 1
	s.cart.clear()
	s.splitCount = 1
	s.billGenerated = false
	return nil
}

func (s *Session) AddItem(item Item) error {
	if err := s.requireOccupied(); err != nil {
		return err
	}
	s.cart.Add(item)
	s.invalidateBill()
	return nil
}

func (s *Session) ChangeQty(menuItemID uint, delta int) error {
	if err := s.requireOccupied(); err != nil {
		return err
	}
	s.cart.ChangeQty(menuItemID, delta)
	s.invalidateBill()
	return nil
}

func (s *Session) SetNote(menuItemID uint, note string) error {
	if err := s.requireOccupied(); err != nil {
		return err
	}
	s.cart.SetNote(menuItemID, note)
	return nil
}

func (s *Session) SetSplit(n int) error {
	if err := s.requireOccupied(); err != nil {
		return err
	}
	if _, err := billing.PerGuestShare(decimal.Zero, n, s.guests); err != nil {
		return fmt.Errorf("%w: split must be between 1 and %d", ErrInvalidArgument, s.guests)
	}
	s.splitCount = n
	return nil
}

// GenerateBill marks the cart as billed. The cart itself is untouched;
// finalizing is a separate step.
func (s *Session) GenerateBill() error {
	if err := s.requireOccupied(); err != nil {
		return err
	}
	if s.cart.IsEmpty() {
		return fmt.Errorf("%w: cannot generate a bill for an empty cart", ErrInvalidState)
	}
	s.billGenerated = true
	return nil
}

// Finalize completes the order: it returns the snapshot to persist and
// resets the session to available/empty. Requires a generated bill.
func (s *Session) Finalize() (*BillSnapshot, error) {
	if err := s.requireOccupied(); err != nil {
		return nil, err
	}
	if !s.billGenerated {
		return nil, fmt.Errorf("%w: generate the bill before checkout", ErrInvalidState)
	}
	if err := s.notify(StatusAvailable); err != nil {
		return nil, err
	}
	snap := &BillSnapshot{
		TableID:      s.tableID,
		CustomerName: s.customerName,
		Guests:       s.guests,
		SplitCount:   s.splitCount,
		Lines:        s.cart.Lines(),
		Totals:       s.Totals(),
	}
	s.status = StatusAvailable
	s.customerName = ""
	s.guests = 1
	s.cart.clear()
	s.splitCount = 1
	s.billGenerated = false
	return snap, nil
}

func (s *Session) requireOccupied() error {
	if s.status != StatusOccupied {
		return fmt.Errorf("%w: table is %s", ErrInvalidState, s.status)
	}
	return nil
}

// invalidateBill drops the billed flag once the cart no longer matches
// the generated bill.
func (s *Session) invalidateBill() {
	s.billGenerated = false
}

func (s *Session) notify(next Status) error {
	if s.sink == nil {
		return nil
	}
	if err := s.sink(s.tableID, next); err != nil {
		return fmt.Errorf("persist table status: %w", err)
	}
	return nil
}
