package entries

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultValue is the value of unwritten slots.
const DefaultValue = ""

// List is the ordered sequence of entries edited by the form.
type List struct {
	values []string
	ids    []string

	// trailingID is the identity reserved for the virtual slot at Len().
	trailingID string
}

// New creates a list holding a copy of the given values.
func New(values ...string) *List {
	l := &List{
		values:     make([]string, 0, len(values)),
		ids:        make([]string, 0, len(values)),
		trailingID: newID(),
	}
	for _, v := range values {
		l.values = append(l.values, v)
		l.ids = append(l.ids, newID())
	}
	return l
}

// NewEmpty creates a list of n default-valued entries.
func NewEmpty(n int) *List {
	if n < 0 {
		n = 0
	}
	return New(make([]string, n)...)
}

// Len returns the number of materialized entries.
func (l *List) Len() int {
	return len(l.values)
}

// Read returns the entry at index, or DefaultValue when index is outside the list.
func (l *List) Read(index int) string {
	if index < 0 || index >= len(l.values) {
		return DefaultValue
	}
	return l.values[index]
}

// Write stores value at index. Writing at or past the end first appends
// DefaultValue until the list is long enough to hold index.
func (l *List) Write(index int, value string) {
	if index < 0 {
		return
	}
	for index >= len(l.values) {
		l.values = append(l.values, DefaultValue)
		l.ids = append(l.ids, l.trailingID)
		l.trailingID = newID()
	}
	l.values[index] = value
}

// Delete removes the entries at the given pre-deletion indices. Indices that
// have no backing entry, including the virtual trailing slot, are ignored.
// It returns the number of entries removed.
func (l *List) Delete(indices map[int]struct{}) int {
	if len(indices) == 0 {
		return 0
	}

	keptValues := l.values[:0]
	keptIDs := l.ids[:0]
	removed := 0
	for i := range l.values {
		if _, drop := indices[i]; drop {
			removed++
			continue
		}
		keptValues = append(keptValues, l.values[i])
		keptIDs = append(keptIDs, l.ids[i])
	}

	// Clear the tail so dropped strings are not retained by the backing array.
	for i := len(keptValues); i < len(l.values); i++ {
		l.values[i] = ""
		l.ids[i] = ""
	}
	l.values = keptValues
	l.ids = keptIDs

	return removed
}

// DeleteIndices is a convenience wrapper around Delete for index slices.
func (l *List) DeleteIndices(indices ...int) int {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return l.Delete(set)
}

// ID returns the stable identity of the row at index. Index Len() yields the
// identity reserved for the virtual trailing slot; anything else out of range
// returns "".
func (l *List) ID(index int) string {
	switch {
	case index >= 0 && index < len(l.ids):
		return l.ids[index]
	case index == len(l.ids):
		return l.trailingID
	default:
		return ""
	}
}

// Values returns a copy of the entries.
func (l *List) Values() []string {
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

// SortedIndices returns the members of an index set in ascending order.
func SortedIndices(indices map[int]struct{}) []int {
	out := make([]int, 0, len(indices))
	for i := range indices {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func newID() string {
	return uuid.NewString()
}
