package cart

import "fmt"

// Line is one orderable item entry: a name, the unit price supplied by the
// caller at add time, and a quantity.
type Line struct {
	Name      string
	UnitPrice float64
	Quantity  int64
}

func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// LineView is the read-only projection of a line handed to callers.
type LineView struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Cart owns the session's line items. Lines keep insertion order for
// display; totals do not depend on it. No two lines share a name.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends a line, or merges into the existing line with the same
// name: the quantity accumulates and the unit price is taken from the
// latest call. Returns a confirmation message naming the item and its new
// quantity.
func (c *Cart) AddItem(name string, unitPrice float64, quantity int64) (string, error) {
	if quantity <= 0 {
		return "", ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return "", ErrNegativePrice
	}

	for i := range c.lines {
		if c.lines[i].Name == name {
			c.lines[i].Quantity += quantity
			c.lines[i].UnitPrice = unitPrice
			return fmt.Sprintf("Updated %s, quantity now %d", name, c.lines[i].Quantity), nil
		}
	}

	c.lines = append(c.lines, Line{Name: name, UnitPrice: unitPrice, Quantity: quantity})
	return fmt.Sprintf("Added %s x%d to cart", name, quantity), nil
}

// RemoveItem deletes the named line entirely. Removing an absent name is a
// no-op; the return value reports whether anything was removed.
func (c *Cart) RemoveItem(name string) bool {
	for i := range c.lines {
		if c.lines[i].Name == name {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns the current line views in display order. It never mutates
// the cart, so repeated calls without an intervening mutation yield
// identical results.
func (c *Cart) Lines() []LineView {
	views := make([]LineView, 0, len(c.lines))
	for _, l := range c.lines {
		views = append(views, LineView{
			Name:     l.Name,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return views
}

// ItemNames returns the line names in display order.
func (c *Cart) ItemNames() []string {
	names := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		names = append(names, l.Name)
	}
	return names
}

// Subtotal is the sum of all line subtotals; 0 for an empty cart.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Clear() {
	c.lines = nil
}
