package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

// CheckoutService turns a finalized table session into the permanent
// order and transaction records, committed together.
type CheckoutService struct {
	DB     *gorm.DB
	Tables *TableService
	Orders *repository.OrderRepository
	Txns   *repository.TransactionRepository
}

func NewCheckoutService(db *gorm.DB, tables *TableService, orders *repository.OrderRepository, txns *repository.TransactionRepository) *CheckoutService {
	return &CheckoutService{DB: db, Tables: tables, Orders: orders, Txns: txns}
}

func (s *CheckoutService) Checkout(tableID uint, paymentMethod string) (*entity.Order, *entity.Transaction, error) {
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	table, err := s.Tables.Get(tableID)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.Tables.Session(tableID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Status() != session.StatusOccupied {
		return nil, nil, fmt.Errorf("%w: table is %s", session.ErrInvalidState, sess.Status())
	}
	if !sess.BillGenerated() {
		return nil, nil, fmt.Errorf("%w: generate the bill before checkout", session.ErrInvalidState)
	}

	// Snapshot before the session resets, so a failed commit leaves the
	// session (and its cart) untouched.
	lines := sess.Lines()
	totals := sess.Totals()
	now := time.Now()

	order := &entity.Order{
		TableID:      tableID,
		TableNumber:  table.Number,
		CustomerName: sess.CustomerName(),
		Guests:       sess.Guests(),
		Subtotal:     totals.Subtotal.StringFixed(2),
		Tax:          totals.Tax.StringFixed(2),
		Total:        totals.Total.StringFixed(2),
		SplitCount:   sess.SplitCount(),
	}
	for _, l := range lines {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			UnitPrice:  l.Price.StringFixed(2),
			Qty:        l.Qty,
			Note:       l.Note,
			Total:      l.Price.Mul(decimal.NewFromInt(int64(l.Qty))).StringFixed(2),
		})
	}

	txn := &entity.Transaction{
		TransactionID: "TXN-" + strconv.FormatInt(now.UnixNano(), 10),
		Date:          now,
		CustomerName:  sess.CustomerName(),
		Amount:        totals.Total.StringFixed(2),
		Type:          "sale",
		PaymentMethod: paymentMethod,
		Status:        "completed",
		Description:   fmt.Sprintf("Dine-in, table %d, %d guests", table.Number, sess.Guests()),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.Create(tx, order); err != nil {
			return err
		}
		txn.Reference = "ORD-" + strconv.FormatUint(uint64(order.ID), 10)
		return s.Txns.Create(tx, txn)
	})
	if err != nil {
		return nil, nil, err
	}

	// Records are committed; now release the table.
	if _, err := sess.Finalize(); err != nil {
		return nil, nil, err
	}
	if err := s.Tables.saveMirror(sess); err != nil {
		return nil, nil, err
	}
	return order, txn, nil
}

func (s *CheckoutService) ListOrders(limit, offset int) ([]entity.Order, int64, error) {
	return s.Orders.List(limit, offset)
}

func (s *CheckoutService) GetOrder(id uint) (*entity.Order, error) {
	o, err := s.Orders.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return o, nil
}
