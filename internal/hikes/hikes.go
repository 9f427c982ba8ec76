// Package hikes holds the fixed hike catalog shown by the picker screen.
package hikes

import "fmt"

// Hike is one selectable trail. ID is only used as the row key.
type Hike struct {
	ID   string
	Name string
}

// Catalog is an ordered, read-only list of hikes. The zero value is empty.
type Catalog struct {
	items []Hike
}

// NewCatalog copies items so later changes to the caller's slice are not seen.
func NewCatalog(items ...Hike) Catalog {
	return Catalog{items: append([]Hike(nil), items...)}
}

// Default returns the built-in trail list.
func Default() Catalog {
	return NewCatalog(
		Hike{ID: "1", Name: "Mount Kenya Trek"},
		Hike{ID: "2", Name: "Ngong Hills Hike"},
		Hike{ID: "3", Name: "Karura Forest Trails"},
		Hike{ID: "4", Name: "Aberdare Ranges Adventure"},
		Hike{ID: "5", Name: "Hell's Gate National Park Walk"},
	)
}

func (c Catalog) Len() int { return len(c.items) }

// At returns the hike at index i. It panics if i is out of range.
func (c Catalog) At(i int) Hike { return c.items[i] }

// Hikes returns a copy of the list in catalog order.
func (c Catalog) Hikes() []Hike {
	return append([]Hike(nil), c.items...)
}

// Names returns the display names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c.items))
	for _, h := range c.items {
		out = append(out, h.Name)
	}
	return out
}

// Validate reports the first empty or duplicate ID. Nothing calls it at
// runtime; rendering relies on the list being well formed.
func (c Catalog) Validate() error {
	seen := make(map[string]int, len(c.items))
	for i, h := range c.items {
		if h.ID == "" {
			return fmt.Errorf("hike %d (%q): empty id", i, h.Name)
		}
		if j, ok := seen[h.ID]; ok {
			return fmt.Errorf("hike %d (%q): duplicate id %q (first at %d)", i, h.Name, h.ID, j)
		}
		seen[h.ID] = i
	}
	return nil
}
