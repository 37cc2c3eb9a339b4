// Package autogrow implements multi-line rows whose height follows their content.
//
// A Row is bound to one slot of an entry list. It measures its text at the
// current width and keeps a height no smaller than its floor. Height updates
// are never applied from inside a recalculation: they are handed to a
// Scheduler and applied on the next tick, which keeps a render pass from
// invalidating its own layout.
//
// # Lifecycle
//
//	queue := &autogrow.Queue{}
//	row := autogrow.Mount(list, 3, 40, measurer, queue)
//
//	row.SetText("hello")  // writes list[3], re-measures
//	row.SetWidth(20)      // re-measures with the same text
//
//	queue.Flush()         // next tick: pending heights are applied
//
// # States
//
// A row is Idle while its stored height is current and Measuring from the
// moment a recalculation finds a different height until the last scheduled
// update is applied.
package autogrow
