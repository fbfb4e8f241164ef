package services

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/billing"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Admin{}, &entity.Table{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Transaction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTableService(t *testing.T, db *gorm.DB) *TableService {
	t.Helper()
	return NewTableService(
		repository.NewTableRepository(db),
		repository.NewMenuRepository(db),
		billing.MustRate(billing.DefaultTaxRate),
	)
}

func seedTableAndMenu(t *testing.T, db *gorm.DB) (tableID, thaliID, chaasID uint) {
	t.Helper()
	table := entity.Table{Number: 1, Capacity: 4, Status: "available", Guests: 1}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("table: %v", err)
	}
	thali := entity.MenuItem{Name: "Veg Thali", Category: "Main Course", Price: "220", IsAvailable: true, IsVegetarian: true}
	if err := db.Create(&thali).Error; err != nil {
		t.Fatalf("menu: %v", err)
	}
	chaas := entity.MenuItem{Name: "Masala Chaas", Category: "Beverages", Price: "60", IsAvailable: false, IsVegetarian: true}
	if err := db.Create(&chaas).Error; err != nil {
		t.Fatalf("menu: %v", err)
	}
	return table.ID, thali.ID, chaas.ID
}

func TestOccupyPersistsMirror(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)
	tableID, _, _ := seedTableAndMenu(t, db)

	if err := svc.Occupy(tableID, "Kulkarni", 3); err != nil {
		t.Fatalf("occupy: %v", err)
	}

	var row entity.Table
	if err := db.First(&row, tableID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if row.Status != "occupied" || row.CustomerName != "Kulkarni" || row.Guests != 3 {
		t.Fatalf("mirror not persisted: %+v", row)
	}
}

func TestAddItemRejectsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)
	tableID, _, chaasID := seedTableAndMenu(t, db)

	if err := svc.Occupy(tableID, "Kulkarni", 2); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if err := svc.AddItem(tableID, chaasID); !errors.Is(err, session.ErrInvalidState) {
		t.Fatalf("got %v, want ErrInvalidState for unavailable item", err)
	}
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)
	tableID, _, _ := seedTableAndMenu(t, db)

	if err := svc.Occupy(tableID, "Kulkarni", 2); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if err := svc.AddItem(tableID, 999); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUnknownTableIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)

	if err := svc.Occupy(42, "Kulkarni", 2); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteRefusesOccupiedTable(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)
	tableID, _, _ := seedTableAndMenu(t, db)

	if err := svc.Occupy(tableID, "Kulkarni", 2); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if err := svc.Delete(tableID); !errors.Is(err, session.ErrInvalidState) {
		t.Fatalf("got %v, want ErrInvalidState", err)
	}
	if err := svc.SetStatus(tableID, "available"); err != nil {
		t.Fatalf("free table: %v", err)
	}
	if err := svc.Delete(tableID); err != nil {
		t.Fatalf("delete freed table: %v", err)
	}
}

func TestStatusOverrideDiscardsCartAndPersists(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)
	tableID, thaliID, _ := seedTableAndMenu(t, db)

	if err := svc.Occupy(tableID, "Kulkarni", 2); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if err := svc.AddItem(tableID, thaliID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.SetStatus(tableID, "reserved"); err != nil {
		t.Fatalf("override: %v", err)
	}

	view, err := svc.View(tableID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Status != session.StatusReserved || len(view.Lines) != 0 {
		t.Fatalf("cart must be gone after override: %+v", view)
	}
	var row entity.Table
	db.First(&row, tableID)
	if row.Status != "reserved" || row.CustomerName != "" {
		t.Fatalf("mirror not cleared: %+v", row)
	}
}

func TestLoadSessionsRestoresStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(t, db)
	tableID, _, _ := seedTableAndMenu(t, db)
	if err := svc.Occupy(tableID, "Kulkarni", 2); err != nil {
		t.Fatalf("occupy: %v", err)
	}

	// A second service over the same DB simulates a restart.
	svc2 := newTableService(t, db)
	if err := svc2.LoadSessions(); err != nil {
		t.Fatalf("load: %v", err)
	}
	view, err := svc2.View(tableID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Status != session.StatusOccupied || view.CustomerName != "Kulkarni" || view.Guests != 2 {
		t.Fatalf("restored view wrong: %+v", view)
	}
	// the cart is live-only and does not survive the restart
	if len(view.Lines) != 0 {
		t.Fatalf("cart should not survive a restart")
	}
}
