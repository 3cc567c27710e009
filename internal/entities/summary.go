package entities

import (
	"fmt"
	"strings"
)

// Summary holds the normalized figures every outgoing email is rendered
// from. Built once per order, pure arithmetic and string formatting.
type Summary struct {
	// Effective delivery fee: the explicit fee when the caller sent one,
	// otherwise total minus subtotal.
	DeliveryFee float64

	// Preformatted item list, one line per item, input order preserved.
	ItemLines string

	Subtotal       float64
	Discounts      []Discount
	DiscountAmount float64
	TotalAmount    float64
}

// BuildSummary normalizes raw order figures. When the payload carries no
// explicit delivery fee, the fee is derived as total − subtotal. Older
// callers never sent a fee, so this fallback silently absorbs discount and
// rounding effects into the fee; it must stay as is.
func BuildSummary(o Order) Summary {
	fee := o.TotalAmount - o.Subtotal
	if o.DeliveryFee != nil {
		fee = *o.DeliveryFee
	}

	return Summary{
		DeliveryFee:    fee,
		ItemLines:      ItemLines(o.Items),
		Subtotal:       o.Subtotal,
		Discounts:      o.Discounts,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
	}
}

// FreeDelivery reports whether the fee line should be replaced by the
// free-delivery indicator.
func (s Summary) FreeDelivery() bool {
	return s.DeliveryFee <= 0
}

// ItemLine formats one ordered item:
//
//	2x Margherita (Large) + Extras: Cheese, Olives - €20.00
//
// The extras segment is omitted for items without extras.
func ItemLine(it Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx %s (%s)", it.Quantity, it.Name, it.Size)
	if len(it.Extras) > 0 {
		b.WriteString(" + Extras: ")
		b.WriteString(strings.Join(it.Extras, ", "))
	}
	fmt.Fprintf(&b, " - €%s", FormatAmount(it.UnitPrice*float64(it.Quantity)))
	return b.String()
}

// ItemLines joins the per-item lines with newlines, never re-sorting.
func ItemLines(items []Item) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, ItemLine(it))
	}
	return strings.Join(lines, "\n")
}

// FormatAmount renders a currency amount with exactly two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
