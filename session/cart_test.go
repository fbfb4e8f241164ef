package session

import (
	"testing"

	"github.com/shopspring/decimal"
)

func item(id uint, name, price string) Item {
	p, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return Item{ID: id, Name: name, Price: p}
}

func TestCartAddMergesSameItem(t *testing.T) {
	var c Cart
	c.Add(item(1, "Veg Thali", "220"))
	c.Add(item(1, "Veg Thali", "220"))

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Fatalf("qty = %d, want 2", lines[0].Qty)
	}
}

func TestCartAddFreezesPrice(t *testing.T) {
	var c Cart
	c.Add(item(1, "Veg Thali", "220"))
	// the menu price changes after the line was added
	c.Add(item(1, "Veg Thali", "250"))

	lines := c.Lines()
	if lines[0].Qty != 2 {
		t.Fatalf("qty = %d, want 2", lines[0].Qty)
	}
	if !lines[0].Price.Equal(decimal.NewFromInt(220)) {
		t.Fatalf("price = %s, want the add-time 220", lines[0].Price)
	}
}

func TestCartChangeQtyPrunesAtZero(t *testing.T) {
	var c Cart
	c.Add(item(1, "Jeera Rice", "140"))
	c.ChangeQty(1, 1) // 2
	c.ChangeQty(1, -2)
	if !c.IsEmpty() {
		t.Fatalf("cart should be empty after dropping to zero")
	}
}

func TestCartChangeQtyClampsBelowZero(t *testing.T) {
	var c Cart
	c.Add(item(1, "Jeera Rice", "140"))
	c.ChangeQty(1, -5)
	if !c.IsEmpty() {
		t.Fatalf("cart should be empty, not negative")
	}
	// removing again must stay a no-op
	c.ChangeQty(1, -1)
	if !c.IsEmpty() {
		t.Fatalf("no line should reappear")
	}
}

func TestCartUnknownIDNoops(t *testing.T) {
	var c Cart
	c.Add(item(1, "Jeera Rice", "140"))
	c.ChangeQty(99, 1)
	c.SetNote(99, "extra spicy")

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Qty != 1 || lines[0].Note != "" {
		t.Fatalf("unknown ids must not touch the cart: %+v", lines)
	}
}

func TestCartSetNote(t *testing.T) {
	var c Cart
	c.Add(item(1, "Butter Chicken", "320"))
	c.SetNote(1, "less butter")
	if got := c.Lines()[0].Note; got != "less butter" {
		t.Fatalf("note = %q", got)
	}
}

func TestCartSubtotal(t *testing.T) {
	var c Cart
	c.Add(item(1, "Butter Chicken", "320"))
	c.Add(item(2, "Jeera Rice", "140"))
	c.ChangeQty(2, 2) // 3x rice

	want := decimal.NewFromInt(320 + 3*140)
	if got := c.Subtotal(); !got.Equal(want) {
		t.Fatalf("subtotal = %s, want %s", got, want)
	}
}

func TestCartPreservesAddOrder(t *testing.T) {
	var c Cart
	c.Add(item(2, "Jeera Rice", "140"))
	c.Add(item(1, "Butter Chicken", "320"))
	c.Add(item(2, "Jeera Rice", "140"))

	lines := c.Lines()
	if len(lines) != 2 || lines[0].MenuItemID != 2 || lines[1].MenuItemID != 1 {
		t.Fatalf("lines out of order: %+v", lines)
	}
}
