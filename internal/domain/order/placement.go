package order

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domcart "example.com/food-ordering/app/internal/domain/cart"
	dommenu "example.com/food-ordering/app/internal/domain/menu"
)

// EstimatedDeliveryOffset is how far out a confirmed order promises
// delivery.
const EstimatedDeliveryOffset = 45 * time.Minute

// CustomerProfile is the slice of the user profile a placement needs: the
// delivery address to validate against and the history to append to.
type CustomerProfile interface {
	Address() string
	AppendOrder(Record)
}

// Placement drives one checkout flow over a cart, the customer's profile,
// and the session menu. Totals are always projected from the cart's
// current contents, never cached. A successful confirmation clears the
// cart and moves the placement to a terminal confirmed state; further
// confirmation attempts fail with ErrAlreadyConfirmed.
type Placement struct {
	cart         *domcart.Cart
	profile      CustomerProfile
	menu         *dommenu.Menu
	pricing      Pricing
	instructions string
	confirmed    bool
}

func NewPlacement(c *domcart.Cart, profile CustomerProfile, m *dommenu.Menu, pricing Pricing) *Placement {
	return &Placement{
		cart:    c,
		profile: profile,
		menu:    m,
		pricing: pricing,
	}
}

func (p *Placement) Cart() *domcart.Cart {
	return p.cart
}

func (p *Placement) Menu() *dommenu.Menu {
	return p.menu
}

func (p *Placement) Confirmed() bool {
	return p.confirmed
}

// SetSpecialInstructions attaches free-text instructions to the checkout
// summary. The text is not validated beyond being text.
func (p *Placement) SetSpecialInstructions(text string) {
	p.instructions = text
}

func (p *Placement) SpecialInstructions() string {
	return p.instructions
}

// ValidateOrder fails when the cart has no lines or the delivery address
// is empty. Both failures are recoverable: the caller fixes the input and
// retries.
func (p *Placement) ValidateOrder() error {
	if p.cart.Len() == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(p.profile.Address()) == "" {
		return ErrMissingAddress
	}
	return nil
}

// ProceedToCheckout projects the checkout summary from the cart's current
// state. It is a pure projection: safe to call repeatedly, and always
// reflects mutations made since the last call.
func (p *Placement) ProceedToCheckout() CheckoutSummary {
	return CheckoutSummary{
		Items:               p.cart.Lines(),
		Totals:              p.pricing.Breakdown(p.cart.Subtotal()),
		DeliveryAddress:     p.profile.Address(),
		SpecialInstructions: p.instructions,
	}
}

// ConfirmOrder re-validates the order and, on validity, generates an order
// ID, appends a Record to the customer's history, clears the cart, and
// moves the placement to its terminal state. Failures leave the placement
// untouched so the caller may retry.
func (p *Placement) ConfirmOrder() (Confirmation, error) {
	if p.confirmed {
		return Confirmation{}, ErrAlreadyConfirmed
	}
	if err := p.ValidateOrder(); err != nil {
		return Confirmation{}, err
	}

	totals := p.pricing.Breakdown(p.cart.Subtotal())
	rec := Record{
		OrderID: uuid.NewString(),
		Items:   p.cart.ItemNames(),
		Total:   totals.Total,
	}
	p.profile.AppendOrder(rec)
	p.cart.Clear()
	p.confirmed = true

	return Confirmation{
		OrderID:           rec.OrderID,
		EstimatedDelivery: time.Now().UTC().Add(EstimatedDeliveryOffset),
		Message:           "Order confirmed",
	}, nil
}
