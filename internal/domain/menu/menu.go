package menu

import "errors"

var ErrItemNotOnMenu = errors.New("item is not on the menu")

// Menu is the immutable set of orderable item names for a session's
// restaurant context. The core carries no price data; prices are supplied
// by the caller when items are added to a cart.
type Menu struct {
	items []string
	index map[string]struct{}
}

func New(items ...string) *Menu {
	m := &Menu{
		items: make([]string, 0, len(items)),
		index: make(map[string]struct{}, len(items)),
	}
	for _, item := range items {
		if _, ok := m.index[item]; ok {
			continue
		}
		m.items = append(m.items, item)
		m.index[item] = struct{}{}
	}
	return m
}

func (m *Menu) Contains(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Items returns the orderable names in menu order. The slice is a copy.
func (m *Menu) Items() []string {
	items := make([]string, len(m.items))
	copy(items, m.items)
	return items
}
