package order

import (
	"time"

	domcart "example.com/food-ordering/app/internal/domain/cart"
)

// Record is an append-only entry in a user's order history, created only
// by a confirmed order. Records are never edited or removed.
type Record struct {
	OrderID string
	Items   []string
	Total   float64
}

// TotalsBreakdown is the checkout snapshot of the money involved.
// Total always equals Subtotal + Tax + DeliveryFee.
type TotalsBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// Pricing holds the checkout policy constants. Tax and the flat delivery
// fee are deterministic pure functions of the subtotal.
type Pricing struct {
	TaxRate     float64
	DeliveryFee float64
}

var DefaultPricing = Pricing{TaxRate: 0.08, DeliveryFee: 5.0}

func (p Pricing) Breakdown(subtotal float64) TotalsBreakdown {
	tax := subtotal * p.TaxRate
	return TotalsBreakdown{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: p.DeliveryFee,
		Total:       subtotal + tax + p.DeliveryFee,
	}
}

// CheckoutSummary is what the presentation layer shows for review before
// the order is confirmed.
type CheckoutSummary struct {
	Items               []domcart.LineView
	Totals              TotalsBreakdown
	DeliveryAddress     string
	SpecialInstructions string
}

// Confirmation reports a successfully confirmed order.
type Confirmation struct {
	OrderID           string
	EstimatedDelivery time.Time
	Message           string
}
