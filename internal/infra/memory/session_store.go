package memory

import (
	"context"
	"sync"

	domcart "example.com/food-ordering/app/internal/domain/cart"
	dommenu "example.com/food-ordering/app/internal/domain/menu"
	domorder "example.com/food-ordering/app/internal/domain/order"
	domuser "example.com/food-ordering/app/internal/domain/user"
)

// UserSource resolves the account whose profile a checkout flow binds.
type UserSource interface {
	GetByID(ctx context.Context, id int64) (*domuser.User, error)
}

type checkoutSession struct {
	mu        sync.Mutex
	placement *domorder.Placement
}

// SessionStore binds each user to at most one live checkout flow: a fresh
// cart and placement over the user's long-lived profile and the session
// menu. Do serializes all calls per session; sessions of different users
// never block each other.
type SessionStore struct {
	mu       sync.Mutex
	users    UserSource
	menu     *dommenu.Menu
	pricing  domorder.Pricing
	sessions map[int64]*checkoutSession
}

func NewSessionStore(users UserSource, m *dommenu.Menu, pricing domorder.Pricing) *SessionStore {
	return &SessionStore{
		users:    users,
		menu:     m,
		pricing:  pricing,
		sessions: make(map[int64]*checkoutSession),
	}
}

// Do runs fn against the user's placement, creating the checkout flow on
// first use and after a Reset.
func (s *SessionStore) Do(ctx context.Context, userID int64, fn func(*domorder.Placement) error) error {
	sess := s.session(userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.placement == nil {
		u, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		sess.placement = domorder.NewPlacement(domcart.New(), u.Profile, s.menu, s.pricing)
	}
	return fn(sess.placement)
}

// Reset discards the user's current flow. The profile survives; the next
// Do builds a fresh placement with an empty cart.
func (s *SessionStore) Reset(ctx context.Context, userID int64) error {
	sess := s.session(userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.placement = nil
	return nil
}

func (s *SessionStore) session(userID int64) *checkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &checkoutSession{}
		s.sessions[userID] = sess
	}
	return sess
}
