package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat tax applied on top of the subtotal.
const DefaultTaxRate = "0.08"

var ErrSplitOutOfRange = errors.New("split count out of range")

type Line struct {
	Price decimal.Decimal
	Qty   int
}

// Subtotal is the exact sum of price*qty over the lines. No rounding
// happens here; callers round at the response boundary only.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	return sum
}

func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate)
}

func Total(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// PerGuestShare divides the total evenly across splitCount guests.
// splitCount must sit in [1, guests].
func PerGuestShare(total decimal.Decimal, splitCount, guests int) (decimal.Decimal, error) {
	if splitCount < 1 || splitCount > guests {
		return decimal.Zero, ErrSplitOutOfRange
	}
	return total.Div(decimal.NewFromInt(int64(splitCount))), nil
}

// MustRate parses a tax rate string (config value); it panics on startup
// misconfiguration rather than limping along with a zero rate.
func MustRate(s string) decimal.Decimal {
	r, err := decimal.NewFromString(s)
	if err != nil {
		panic("billing: bad tax rate " + s)
	}
	return r
}
