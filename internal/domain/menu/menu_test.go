package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	m := New("Burger", "Pizza", "Salad")

	require.True(t, m.Contains("Pizza"))
	require.False(t, m.Contains("Sushi"))
	require.False(t, m.Contains(""))
}

func TestItems_ReturnsCopy(t *testing.T) {
	m := New("Burger", "Pizza")

	items := m.Items()
	items[0] = "Tacos"

	require.Equal(t, []string{"Burger", "Pizza"}, m.Items())
}

func TestNew_DeduplicatesNames(t *testing.T) {
	m := New("Burger", "Burger", "Pizza")

	require.Len(t, m.Items(), 2)
}
