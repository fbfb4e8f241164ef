package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/timebucket"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

// reportCacheTTL matches the dashboard's 10-minute refresh poll; a
// cached payload can never outlive the next fetch cycle.
const reportCacheTTL = 10 * time.Minute

const reportCacheKey = "report:dashboard"

type ReportService struct {
	Tables *repository.TableRepository
	Menu   *repository.MenuRepository
	Orders *repository.OrderRepository
	Txns   *repository.TransactionRepository
	RDB    *redis.Client
}

func NewReportService(tables *repository.TableRepository, menu *repository.MenuRepository,
	orders *repository.OrderRepository, txns *repository.TransactionRepository, rdb *redis.Client) *ReportService {
	return &ReportService{Tables: tables, Menu: menu, Orders: orders, Txns: txns, RDB: rdb}
}

type DashboardReport struct {
	TotalTables    int64               `json:"totalTables"`
	OccupiedTables int64               `json:"occupiedTables"`
	MenuItems      int64               `json:"menuItems"`
	OrdersToday    int64               `json:"ordersToday"`
	SalesToday     string              `json:"salesToday"`
	OrdersByMonth  []timebucket.Bucket `json:"ordersByMonth"`
	RevenueByMonth []timebucket.Bucket `json:"revenueByMonth"`
}

func (s *ReportService) Dashboard(ctx context.Context) (*DashboardReport, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	report, err := s.build(time.Now())
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, report)
	return report, nil
}

func (s *ReportService) build(now time.Time) (*DashboardReport, error) {
	var r DashboardReport
	var err error

	if r.TotalTables, err = s.Tables.Count(); err != nil {
		return nil, err
	}
	if r.OccupiedTables, err = s.Tables.CountByStatus(session.StatusOccupied.String()); err != nil {
		return nil, err
	}
	if r.MenuItems, err = s.Menu.Count(); err != nil {
		return nil, err
	}

	dayStart, dayEnd := timebucket.Today(now)
	if r.OrdersToday, err = s.Orders.CountInRange(dayStart, dayEnd); err != nil {
		return nil, err
	}

	todayTxns, err := s.Txns.ListInRange(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	sales := decimal.Zero
	for _, t := range todayTxns {
		amt, err := decimal.NewFromString(t.Amount)
		if err != nil {
			continue
		}
		sales = sales.Add(amt)
	}
	r.SalesToday = sales.StringFixed(2)

	windowStart := timebucket.WindowStart(now)

	orders, err := s.Orders.ListSince(windowStart)
	if err != nil {
		return nil, err
	}
	orderPoints := make([]timebucket.Point, len(orders))
	for i, o := range orders {
		orderPoints[i] = timebucket.Point{At: o.CreatedAt, Value: decimal.NewFromInt(1)}
	}
	r.OrdersByMonth = timebucket.Monthly(orderPoints, now)

	txns, err := s.Txns.ListSince(windowStart)
	if err != nil {
		return nil, err
	}
	txnPoints := make([]timebucket.Point, 0, len(txns))
	for _, t := range txns {
		amt, err := decimal.NewFromString(t.Amount)
		if err != nil {
			continue
		}
		txnPoints = append(txnPoints, timebucket.Point{At: t.Date, Value: amt})
	}
	r.RevenueByMonth = timebucket.Monthly(txnPoints, now)

	return &r, nil
}

func (s *ReportService) fromCache(ctx context.Context) *DashboardReport {
	if s.RDB == nil {
		return nil
	}
	raw, err := s.RDB.Get(ctx, reportCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var r DashboardReport
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil
	}
	return &r
}

func (s *ReportService) toCache(ctx context.Context, r *DashboardReport) {
	if s.RDB == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	s.RDB.Set(ctx, reportCacheKey, raw, reportCacheTTL)
}
