package order

import (
	"context"

	domorder "example.com/food-ordering/app/internal/domain/order"
	dompayment "example.com/food-ordering/app/internal/domain/payment"
)

// Sessions resolves the checkout flow bound to a user. Do runs fn with
// the session's mutations serialized; Reset discards the flow so the next
// Do starts a fresh placement over the same profile.
type Sessions interface {
	Do(ctx context.Context, userID int64, fn func(*domorder.Placement) error) error
	Reset(ctx context.Context, userID int64) error
}

// PaymentProcessor is the optional collaborator consulted before an order
// is confirmed. When absent, payment is treated as authorized by default.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, amount float64, method dompayment.Method, details dompayment.CardDetails) (dompayment.Receipt, error)
}

type Service struct {
	sessions Sessions
	payments PaymentProcessor
}

func NewService(sessions Sessions, payments PaymentProcessor) *Service {
	return &Service{sessions: sessions, payments: payments}
}

// Validate reports whether the user's current order would pass checkout:
// the cart must have lines and the profile a delivery address.
func (s *Service) Validate(ctx context.Context, userID int64) error {
	return s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		return p.ValidateOrder()
	})
}

// Checkout validates the order and projects the checkout summary from the
// cart's current state.
func (s *Service) Checkout(ctx context.Context, userID int64) (domorder.CheckoutSummary, error) {
	var summary domorder.CheckoutSummary
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		if err := p.ValidateOrder(); err != nil {
			return err
		}
		summary = p.ProceedToCheckout()
		return nil
	})
	return summary, err
}

func (s *Service) SetInstructions(ctx context.Context, userID int64, text string) error {
	return s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		p.SetSpecialInstructions(text)
		return nil
	})
}

func (s *Service) Instructions(ctx context.Context, userID int64) (string, error) {
	var text string
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		text = p.SpecialInstructions()
		return nil
	})
	return text, err
}

// Confirm places the order. When a payment processor is wired in and a
// method is given, the order total is charged first and a rejection
// blocks confirmation; otherwise payment is authorized by default. On
// success the session is reset so the user's next request starts a fresh
// checkout flow over the same profile.
func (s *Service) Confirm(ctx context.Context, userID int64, method dompayment.Method, details dompayment.CardDetails) (domorder.Confirmation, error) {
	var conf domorder.Confirmation
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		if p.Confirmed() {
			return domorder.ErrAlreadyConfirmed
		}
		if err := p.ValidateOrder(); err != nil {
			return err
		}

		if s.payments != nil && method != "" {
			total := p.ProceedToCheckout().Totals.Total
			if _, err := s.payments.ProcessPayment(ctx, total, method, details); err != nil {
				return err
			}
		}

		var err error
		conf, err = p.ConfirmOrder()
		return err
	})
	if err != nil {
		return domorder.Confirmation{}, err
	}

	if err := s.sessions.Reset(ctx, userID); err != nil {
		return domorder.Confirmation{}, err
	}
	return conf, nil
}
