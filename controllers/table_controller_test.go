package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/billing"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Table{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Transaction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tableSvc := services.NewTableService(
		repository.NewTableRepository(db),
		repository.NewMenuRepository(db),
		billing.MustRate(billing.DefaultTaxRate),
	)
	checkoutSvc := services.NewCheckoutService(db, tableSvc,
		repository.NewOrderRepository(db), repository.NewTransactionRepository(db))
	ctrl := NewTableController(tableSvc, checkoutSvc)

	r := gin.New()
	r.PATCH("/admin/tables/:id/status", ctrl.SetStatus)
	r.GET("/admin/tables/:id/session", ctrl.Session)
	r.POST("/admin/tables/:id/cart", ctrl.AddItem)
	r.PATCH("/admin/tables/:id/cart/:itemId", ctrl.UpdateLine)
	r.POST("/admin/tables/:id/bill", ctrl.GenerateBill)
	r.POST("/admin/tables/:id/checkout", ctrl.CheckoutTable)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedHTTP(t *testing.T, db *gorm.DB) (tableID, menuID uint) {
	t.Helper()
	table := entity.Table{Number: 5, Capacity: 4, Status: "available", Guests: 1}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("table: %v", err)
	}
	item := entity.MenuItem{Name: "Veg Thali", Category: "Main Course", Price: "220", IsAvailable: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("menu: %v", err)
	}
	return table.ID, item.ID
}

func TestTableSessionOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, _ = seedHTTP(t, db)

	// occupy
	w := do(t, r, http.MethodPatch, "/admin/tables/1/status",
		`{"status":"occupied","customerName":"Kulkarni","guests":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("occupy: %d %s", w.Code, w.Body.String())
	}

	// bill on empty cart conflicts
	w = do(t, r, http.MethodPost, "/admin/tables/1/bill", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("empty bill: %d, want 409", w.Code)
	}

	// add twice, then drop one via delta
	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodPost, "/admin/tables/1/cart", `{"menuItemId":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("add: %d %s", w.Code, w.Body.String())
		}
	}
	w = do(t, r, http.MethodPatch, "/admin/tables/1/cart/1", `{"delta":-1,"note":"less salt"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update line: %d %s", w.Code, w.Body.String())
	}

	var payload struct {
		Data struct {
			Lines []struct {
				Qty  int    `json:"qty"`
				Note string `json:"note"`
			} `json:"lines"`
			Totals struct {
				Total string `json:"total"`
			} `json:"totals"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data.Lines) != 1 || payload.Data.Lines[0].Qty != 1 || payload.Data.Lines[0].Note != "less salt" {
		t.Fatalf("lines: %+v", payload.Data.Lines)
	}
	// 220 * 1.08 = 237.6
	if payload.Data.Totals.Total != "237.6" {
		t.Fatalf("total = %q, want 237.6", payload.Data.Totals.Total)
	}

	// bill, then checkout
	w = do(t, r, http.MethodPost, "/admin/tables/1/bill", "")
	if w.Code != http.StatusOK {
		t.Fatalf("bill: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/admin/tables/1/checkout", `{"paymentMethod":"cash"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: %d %s", w.Code, w.Body.String())
	}

	// table is free again
	w = do(t, r, http.MethodGet, "/admin/tables/1/session", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"available"`) {
		t.Fatalf("session after checkout: %d %s", w.Code, w.Body.String())
	}
}

func TestUnknownTableOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	w := do(t, r, http.MethodGet, "/admin/tables/99/session", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

func TestBadStatusOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, _ = seedHTTP(t, db)
	w := do(t, r, http.MethodPatch, "/admin/tables/1/status", `{"status":"cleaning"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}
