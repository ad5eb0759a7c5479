// Package tagindex builds the sparse tag to dense position table used by
// generated field collections.
//
// Protocol tags are sparse: a version may define a few thousand fields with
// tags spread over a much larger range. The dense list holds only defined
// entries (plus a placeholder at position 0) and the lookup table, indexed by
// raw tag, maps each tag to its dense position or to the placeholder.
package tagindex

import (
	"errors"
	"fmt"
)

var (
	// ErrReservedTag is returned for items with a tag less than 1. Tag 0 is
	// reserved for the placeholder.
	ErrReservedTag = errors.New("tag 0 is reserved")

	// ErrUnsorted is returned when tags are not strictly ascending.
	ErrUnsorted = errors.New("tags are not strictly ascending")
)

// Table is an immutable sparse-to-dense index.
type Table[T any] struct {
	// Lookup is indexed by tag and holds dense positions; 0 is the placeholder.
	Lookup []int
	// Dense holds the placeholder at 0 and the items in tag order at 1..N.
	Dense []T
}

// Build computes the table for items, which must be sorted ascending by tag
// with no duplicates and no tag below 1.
func Build[T any](items []T, tagOf func(T) int, placeholder T) (*Table[T], error) {
	maxTag := 0
	for i, item := range items {
		tag := tagOf(item)
		if tag < 1 {
			return nil, fmt.Errorf("item %d has tag %d: %w", i, tag, ErrReservedTag)
		}

		if tag <= maxTag {
			return nil, fmt.Errorf("item %d has tag %d after tag %d: %w", i, tag, maxTag, ErrUnsorted)
		}

		maxTag = tag
	}

	lookup := make([]int, maxTag+1)
	dense := make([]T, 0, len(items)+1)
	dense = append(dense, placeholder)

	// Tag 0 is the placeholder slot, not a gap.
	cursor := 1
	gapCount := 0

	for _, item := range items {
		tag := tagOf(item)

		for cursor < tag {
			lookup[cursor] = 0
			cursor++
			gapCount++
		}

		// Every earlier gap is excluded from the dense numbering, so this is
		// the item's 1-based position in dense.
		lookup[cursor] = cursor - gapCount
		cursor++

		dense = append(dense, item)
	}

	return &Table[T]{Lookup: lookup, Dense: dense}, nil
}

// Resolve returns the item with tag, or the placeholder when tag is out of
// range or has no item.
func (t *Table[T]) Resolve(tag int) T {
	if tag < 0 || tag >= len(t.Lookup) {
		return t.Dense[0]
	}

	return t.Dense[t.Lookup[tag]]
}

// MaxTag returns the highest tag covered by Lookup.
func (t *Table[T]) MaxTag() int {
	return len(t.Lookup) - 1
}

// Len returns the number of defined items, excluding the placeholder.
func (t *Table[T]) Len() int {
	return len(t.Dense) - 1
}
