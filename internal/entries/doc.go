// Package entries owns the ordered list of text entries backing the form.
//
// The list is always rendered with one extra virtual slot past its end. Reads
// of that slot (or anything beyond it) return the default value without
// touching the list; writes to it materialize the slot, padding with default
// values when the write lands further out.
//
// # Operations
//
//   - Read: indexed read with a default for out-of-range indices
//   - Write: indexed write that pads the list as needed
//   - Delete: removal of a set of indices in one pass, using pre-deletion indices
//
// # Row Identity
//
// Every materialized entry carries a stable identity assigned once when the
// entry is created. The virtual trailing slot reserves the identity it will
// keep once written, so a row being typed into does not change identity when
// it becomes a real entry.
//
// # Thread Safety
//
// A List is owned by a single screen and is accessed from the UI event loop
// only. It performs no locking.
package entries
