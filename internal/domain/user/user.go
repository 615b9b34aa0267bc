package user

import (
	"strings"
	"sync"

	domorder "example.com/food-ordering/app/internal/domain/order"
)

// User is a registered account. The profile it carries is shared with any
// live checkout session, so the placement's history appends are visible
// here.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Profile      *Profile
}

// Profile holds the delivery address and the append-only order history.
// Durable storage is the persistence collaborator's problem; this core
// only mutates the in-memory object.
//
// A profile outlives any single checkout flow and is read and written
// from outside the session lock (address changes, history views), so it
// guards its own state.
type Profile struct {
	mu      sync.RWMutex
	address string
	history []domorder.Record
}

func NewProfile(address string) *Profile {
	return &Profile{address: address}
}

func (p *Profile) Address() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.address
}

// SetAddress rejects blank addresses; everything else is the caller's
// text.
func (p *Profile) SetAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrEmptyAddress
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.address = address
	return nil
}

func (p *Profile) AppendOrder(rec domorder.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.history = append(p.history, rec)
}

// OrderHistory returns the records oldest-first. The slice is a copy so
// callers cannot edit or remove appended records.
func (p *Profile) OrderHistory() []domorder.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domorder.Record, len(p.history))
	copy(out, p.history)
	return out
}
