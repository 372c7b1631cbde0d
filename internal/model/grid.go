package model

import (
	"errors"
	"fmt"
)

// Grid dimensions
const (
	GridRows  = 5
	GridCols  = 4
	GridSlots = GridRows * GridCols
)

// Placeholder is the slot value for "no artwork loaded"
const Placeholder = ""

// ErrSlotOutOfRange is returned for slot indexes outside the grid
var ErrSlotOutOfRange = errors.New("slot index out of range")

// Grid is the fixed 5x4 set of image slots. The zero value is a grid of
// placeholders.
type Grid struct {
	slots [GridSlots]string
}

// NewGrid returns a grid with every slot set to the placeholder
func NewGrid() *Grid {
	return &Grid{}
}

// Index maps a row/column pair to a slot index
func Index(row, col int) int {
	return row*GridCols + col
}

// Position maps a slot index back to its row/column pair
func Position(index int) (row, col int) {
	return index / GridCols, index % GridCols
}

func checkIndex(index int) error {
	if index < 0 || index >= GridSlots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	return nil
}

// SetSlot binds a slot to an artwork URL
func (g *Grid) SetSlot(index int, url string) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	g.slots[index] = url
	return nil
}

// PlaceholderFor resets a slot to the placeholder
func (g *Grid) PlaceholderFor(index int) error {
	return g.SetSlot(index, Placeholder)
}

// URL returns the URL bound to a slot, or Placeholder
func (g *Grid) URL(index int) string {
	if checkIndex(index) != nil {
		return Placeholder
	}
	return g.slots[index]
}

// IsPlaceholder reports whether a slot has never received artwork
func (g *Grid) IsPlaceholder(index int) bool {
	return g.URL(index) == Placeholder
}

// OccupiedCount returns the number of slots holding a real URL
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, u := range g.slots {
		if u != Placeholder {
			n++
		}
	}
	return n
}

// Occupied returns the URLs of all non-placeholder slots in index order
func (g *Grid) Occupied() []string {
	urls := make([]string, 0, GridSlots)
	for _, u := range g.slots {
		if u != Placeholder {
			urls = append(urls, u)
		}
	}
	return urls
}

// FillOrder returns slot indexes in the order Fill assigns them:
// column by column, top to bottom within each column.
func FillOrder() []int {
	order := make([]int, 0, GridSlots)
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows; row++ {
			order = append(order, Index(row, col))
		}
	}
	return order
}

// Fill assigns urls to slots in FillOrder and returns the indexes written.
// Slots past the end of urls keep whatever they held before.
func (g *Grid) Fill(urls []string) []int {
	written := make([]int, 0, GridSlots)
	for i, index := range FillOrder() {
		if i >= len(urls) {
			break
		}
		g.slots[index] = urls[i]
		written = append(written, index)
	}
	return written
}
