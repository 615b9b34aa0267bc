package memory

import (
	"context"
	"sync"

	domuser "example.com/food-ordering/app/internal/domain/user"
)

// UserRepository keeps registered users in memory for the lifetime of the
// process. Stored users are returned as-is, not cloned: a user's profile
// is shared with live checkout sessions on purpose, so history appends
// and address changes are visible everywhere.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[int64]*domuser.User
	byEmail map[string]int64
	nextID  int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[int64]*domuser.User),
		byEmail: make(map[string]int64),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domuser.ErrEmailAlreadyUsed
	}

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return r.byID[id], nil
}
