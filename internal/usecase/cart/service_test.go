package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/food-ordering/app/internal/domain/cart"
	dommenu "example.com/food-ordering/app/internal/domain/menu"
	domorder "example.com/food-ordering/app/internal/domain/order"
	domuser "example.com/food-ordering/app/internal/domain/user"
)

type fakeSessions struct {
	menu       *dommenu.Menu
	placements map[int64]*domorder.Placement
}

func newFakeSessions(items ...string) *fakeSessions {
	return &fakeSessions{
		menu:       dommenu.New(items...),
		placements: make(map[int64]*domorder.Placement),
	}
}

func (f *fakeSessions) Do(ctx context.Context, userID int64, fn func(*domorder.Placement) error) error {
	p, ok := f.placements[userID]
	if !ok {
		p = domorder.NewPlacement(domcart.New(), domuser.NewProfile("123 Main St"), f.menu, domorder.DefaultPricing)
		f.placements[userID] = p
	}
	return fn(p)
}

func TestAddItem_OnMenu(t *testing.T) {
	svc := NewService(newFakeSessions("Burger", "Pizza"))

	msg, err := svc.AddItem(context.Background(), 1, "Burger", 8.0, 2)

	require.NoError(t, err)
	require.Contains(t, msg, "Burger")

	lines, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(2), lines[0].Quantity)
	require.Equal(t, 16.0, lines[0].Subtotal)
}

func TestAddItem_NotOnMenu(t *testing.T) {
	svc := NewService(newFakeSessions("Burger"))

	_, err := svc.AddItem(context.Background(), 1, "Sushi", 9.0, 1)

	require.ErrorIs(t, err, dommenu.ErrItemNotOnMenu)

	lines, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, lines, "rejected names must not touch the cart")
}

func TestAddItem_RepeatAccumulates(t *testing.T) {
	svc := NewService(newFakeSessions("Pizza"))

	_, err := svc.AddItem(context.Background(), 1, "Pizza", 10.0, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), 1, "Pizza", 10.0, 3)
	require.NoError(t, err)

	lines, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(5), lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	svc := NewService(newFakeSessions("Pizza"))
	_, err := svc.AddItem(context.Background(), 1, "Pizza", 10.0, 2)
	require.NoError(t, err)

	removed, err := svc.RemoveItem(context.Background(), 1, "Pizza")
	require.NoError(t, err)
	require.True(t, removed)

	// Absent name: clean no-op.
	removed, err = svc.RemoveItem(context.Background(), 1, "Pizza")
	require.NoError(t, err)
	require.False(t, removed)

	lines, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestCarts_IsolatedPerUser(t *testing.T) {
	svc := NewService(newFakeSessions("Burger"))

	_, err := svc.AddItem(context.Background(), 1, "Burger", 8.0, 3)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), 2, "Burger", 8.0, 7)
	require.NoError(t, err)

	lines1, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), lines1[0].Quantity)

	lines2, err := svc.ViewCart(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), lines2[0].Quantity)
}

func TestMenuItems(t *testing.T) {
	svc := NewService(newFakeSessions("Burger", "Pizza", "Salad"))

	items, err := svc.MenuItems(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, []string{"Burger", "Pizza", "Salad"}, items)
}
