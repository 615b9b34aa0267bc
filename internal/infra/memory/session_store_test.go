package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	dommenu "example.com/food-ordering/app/internal/domain/menu"
	domorder "example.com/food-ordering/app/internal/domain/order"
	domuser "example.com/food-ordering/app/internal/domain/user"
)

func newStoreWithUser(t *testing.T) (*SessionStore, *domuser.User) {
	t.Helper()
	repo := NewUserRepository()
	u, err := repo.Create(context.Background(), &domuser.User{
		Email:   "alice@example.com",
		Profile: domuser.NewProfile("123 Main St"),
	})
	require.NoError(t, err)

	store := NewSessionStore(repo, dommenu.New("Burger", "Pizza"), domorder.DefaultPricing)
	return store, u
}

func TestDo_SamePlacementAcrossCalls(t *testing.T) {
	store, u := newStoreWithUser(t)

	err := store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
		_, err := p.Cart().AddItem("Burger", 8.0, 2)
		return err
	})
	require.NoError(t, err)

	err = store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
		require.Equal(t, 16.0, p.Cart().Subtotal())
		return nil
	})
	require.NoError(t, err)
}

func TestDo_UnknownUser(t *testing.T) {
	store, _ := newStoreWithUser(t)

	err := store.Do(context.Background(), 999, func(p *domorder.Placement) error {
		t.Fatal("fn must not run for unknown users")
		return nil
	})

	require.ErrorIs(t, err, domuser.ErrUserNotFound)
}

func TestReset_FreshFlowSameProfile(t *testing.T) {
	store, u := newStoreWithUser(t)

	err := store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
		_, err := p.Cart().AddItem("Burger", 8.0, 1)
		if err != nil {
			return err
		}
		_, err = p.ConfirmOrder()
		return err
	})
	require.NoError(t, err)

	require.NoError(t, store.Reset(context.Background(), u.ID))

	err = store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
		require.Equal(t, 0, p.Cart().Len())
		require.False(t, p.Confirmed())
		return nil
	})
	require.NoError(t, err)

	// History lives on the profile and survives the reset.
	require.Len(t, u.Profile.OrderHistory(), 1)
}

func TestProfileAccessConcurrentWithCheckout(t *testing.T) {
	store, u := newStoreWithUser(t)

	const rounds = 50
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for i := 0; i < rounds; i++ {
			err := store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
				if _, err := p.Cart().AddItem("Burger", 8.0, 1); err != nil {
					return err
				}
				_, err := p.ConfirmOrder()
				return err
			})
			if err != nil {
				errCh <- err
				return
			}
			if err := store.Reset(context.Background(), u.ID); err != nil {
				errCh <- err
				return
			}
		}
	}()

	// History reads and address writes race the confirmations above; the
	// shared profile serializes its own state.
	for i := 0; i < rounds; i++ {
		_ = u.Profile.OrderHistory()
		_ = u.Profile.Address()
		if i%10 == 0 {
			require.NoError(t, u.Profile.SetAddress("456 Side St"))
		}
	}

	require.NoError(t, <-errCh)
	require.Len(t, u.Profile.OrderHistory(), rounds)
	require.Equal(t, "456 Side St", u.Profile.Address())
}

func TestDo_SerializesPerSession(t *testing.T) {
	store, u := newStoreWithUser(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
				_, err := p.Cart().AddItem("Burger", 8.0, 1)
				return err
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	err := store.Do(context.Background(), u.ID, func(p *domorder.Placement) error {
		lines := p.Cart().Lines()
		require.Len(t, lines, 1)
		require.Equal(t, int64(20), lines[0].Quantity)
		return nil
	})
	require.NoError(t, err)
}
