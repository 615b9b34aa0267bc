package cart

import (
	"context"

	domcart "example.com/food-ordering/app/internal/domain/cart"
	dommenu "example.com/food-ordering/app/internal/domain/menu"
	domorder "example.com/food-ordering/app/internal/domain/order"
)

// Sessions resolves the checkout flow bound to a user and runs fn with
// the session's mutations serialized.
type Sessions interface {
	Do(ctx context.Context, userID int64, fn func(*domorder.Placement) error) error
}

type Service struct {
	sessions Sessions
}

func NewService(sessions Sessions) *Service {
	return &Service{sessions: sessions}
}

// AddItem puts quantity units of a menu item into the user's cart at the
// caller-supplied unit price. Names missing from the session menu are
// rejected before the cart is touched.
func (s *Service) AddItem(ctx context.Context, userID int64, name string, unitPrice float64, quantity int64) (string, error) {
	var msg string
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		if !p.Menu().Contains(name) {
			return dommenu.ErrItemNotOnMenu
		}
		var err error
		msg, err = p.Cart().AddItem(name, unitPrice, quantity)
		return err
	})
	return msg, err
}

// RemoveItem reports whether a line was actually removed; removing an
// absent name is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID int64, name string) (bool, error) {
	var removed bool
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		removed = p.Cart().RemoveItem(name)
		return nil
	})
	return removed, err
}

func (s *Service) ViewCart(ctx context.Context, userID int64) ([]domcart.LineView, error) {
	var lines []domcart.LineView
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		lines = p.Cart().Lines()
		return nil
	})
	return lines, err
}

func (s *Service) MenuItems(ctx context.Context, userID int64) ([]string, error) {
	var items []string
	err := s.sessions.Do(ctx, userID, func(p *domorder.Placement) error {
		items = p.Menu().Items()
		return nil
	})
	return items, err
}
