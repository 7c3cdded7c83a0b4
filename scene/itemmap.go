package scene

import (
	"fmt"
	"strings"

	"github.com/inkwell-doc/pagerender/geom"
)

// item is one entry in the spatial index: a device-space rect and the
// label of the text-showing operator that produced it.
type item struct {
	rect  geom.Rect
	label string
}

// ItemMap is the append-only spatial index populated exclusively by
// text-showing operators (Tj, ', ", TJ), per spec.md §4.4. Rects are in
// device coordinates, i.e. already passed through root_transform.
type ItemMap struct {
	items []item
}

// NewItemMap returns an empty spatial index.
func NewItemMap() *ItemMap {
	return &ItemMap{}
}

// Push records one text-showing operator's device-space rect and label.
func (m *ItemMap) Push(rect geom.Rect, label string) {
	m.items = append(m.items, item{rect: rect, label: label})
}

// Len reports how many entries the index holds.
func (m *ItemMap) Len() int {
	return len(m.items)
}

// Print writes every operator whose rect contains p, one per line, in
// insertion order.
func (m *ItemMap) Print(p geom.Point) {
	for _, it := range m.items {
		if it.rect.Contains(p) {
			fmt.Println(it.label)
		}
	}
}

// GetString returns the comma-joined labels of every operator whose rect
// contains p, in insertion order, or ok=false when nothing matches.
func (m *ItemMap) GetString(p geom.Point) (string, bool) {
	var matches []string
	for _, it := range m.items {
		if it.rect.Contains(p) {
			matches = append(matches, it.label)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	return strings.Join(matches, ", "), true
}
