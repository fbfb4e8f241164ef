package session

import (
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/billing"
	"github.com/shopspring/decimal"
)

// Item is the slice of the menu catalog the cart cares about. Name and
// price are copied into the line at add time, so later menu edits do not
// touch open carts.
type Item struct {
	ID           uint
	Name         string
	Price        decimal.Decimal
	IsVegetarian bool
}

type Line struct {
	MenuItemID   uint            `json:"menuItemId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Qty          int             `json:"qty"`
	Note         string          `json:"note"`
	IsVegetarian bool            `json:"isVegetarian"`
}

// Cart keeps at most one line per menu item, in first-add order. Lines
// never carry a zero quantity; hitting zero prunes the line.
type Cart struct {
	lines []Line
}

func (c *Cart) Add(item Item) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, Line{
		MenuItemID:   item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Qty:          1,
		IsVegetarian: item.IsVegetarian,
	})
}

// ChangeQty adjusts a line by delta, clamping at zero (which removes the
// line). Unknown IDs are a silent no-op.
func (c *Cart) ChangeQty(menuItemID uint, delta int) {
	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		q := c.lines[i].Qty + delta
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Qty = q
		}
		return
	}
}

func (c *Cart) SetNote(menuItemID uint, note string) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Note = note
			return
		}
	}
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy so callers cannot bypass the mutators.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() decimal.Decimal {
	bl := make([]billing.Line, len(c.lines))
	for i, l := range c.lines {
		bl[i] = billing.Line{Price: l.Price, Qty: l.Qty}
	}
	return billing.Subtotal(bl)
}

func (c *Cart) clear() { c.lines = nil }
