package autogrow

// MinHeight is the default height floor of a row.
const MinHeight = 44

// State is the measurement state of a row.
type State int

const (
	Idle State = iota
	Measuring
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Measuring:
		return "measuring"
	default:
		return "unknown"
	}
}

// Measurer returns the natural height of content laid out at width with no
// vertical limit.
type Measurer interface {
	Measure(content string, width int) int
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(content string, width int) int

// Measure implements Measurer.
func (f MeasureFunc) Measure(content string, width int) int {
	return f(content, width)
}

// Binding is the slot of the entry list a row edits.
type Binding interface {
	Read(index int) string
	Write(index int, value string)
}

// HeightObserver is notified after a deferred height update is applied.
type HeightObserver func(row *Row, from, to int)

// Option configures a Row at mount time.
type Option func(*Row)

// WithMinHeight overrides the height floor.
func WithMinHeight(h int) Option {
	return func(r *Row) {
		r.minHeight = h
	}
}

// WithID attaches a stable identity to the row.
func WithID(id string) Option {
	return func(r *Row) {
		r.id = id
	}
}

// WithHeightObserver registers fn to run whenever the stored height changes.
func WithHeightObserver(fn HeightObserver) Option {
	return func(r *Row) {
		r.onHeight = fn
	}
}

// Row is one auto-sizing text block bound to an entry list slot.
type Row struct {
	id    string
	index int
	text  string
	width int

	height    int
	minHeight int
	state     State

	// generation of the most recently scheduled height update
	gen uint64
	// height the most recent scheduled update will apply
	pendingHeight int

	binding   Binding
	measurer  Measurer
	scheduler Scheduler
	onHeight  HeightObserver
}

// Mount creates a row for binding[index] at the given width. The initial
// height is measured and applied immediately.
func Mount(binding Binding, index, width int, m Measurer, s Scheduler, opts ...Option) *Row {
	r := &Row{
		index:     index,
		width:     width,
		minHeight: MinHeight,
		state:     Idle,
		binding:   binding,
		measurer:  m,
		scheduler: s,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.text = binding.Read(index)
	r.height = r.floor(r.measurer.Measure(r.text, r.width))
	return r
}

// ID returns the row's identity, if one was attached.
func (r *Row) ID() string { return r.id }

// Index returns the list index the row is bound to.
func (r *Row) Index() int { return r.index }

// Text returns the row's current text.
func (r *Row) Text() string { return r.text }

// Width returns the width the row was last measured at.
func (r *Row) Width() int { return r.width }

// Height returns the applied height.
func (r *Row) Height() int { return r.height }

// MinHeight returns the row's height floor.
func (r *Row) MinHeight() int { return r.minHeight }

// State returns the measurement state.
func (r *Row) State() State { return r.state }

// ShowsPlaceholder reports whether the placeholder label should be shown.
func (r *Row) ShowsPlaceholder() bool { return r.text == "" }

// SetText handles a user edit: the new text is written through the binding
// and the height is recalculated.
func (r *Row) SetText(text string) {
	if text == r.text {
		return
	}
	r.text = text
	r.binding.Write(r.index, text)
	r.Recalculate()
}

// SetWidth handles a layout change. The text is unchanged.
func (r *Row) SetWidth(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.Recalculate()
}

// Rebind points the row at a different index, reloading its text. Used when
// rows shift after a deletion.
func (r *Row) Rebind(index int) {
	r.index = index
	r.text = r.binding.Read(index)
	r.Recalculate()
}

// Recalculate measures the current text and schedules a height update when
// the result differs from the height the row has or is about to have. It
// reports whether an update was scheduled.
func (r *Row) Recalculate() bool {
	target := r.floor(r.measurer.Measure(r.text, r.width))

	current := r.height
	if r.state == Measuring {
		current = r.pendingHeight
	}
	if target == current {
		return false
	}

	r.state = Measuring
	r.gen++
	r.pendingHeight = target
	gen := r.gen
	r.scheduler.Defer(func() {
		r.apply(gen, target)
	})
	return true
}

func (r *Row) apply(gen uint64, height int) {
	from := r.height
	r.height = height
	if gen == r.gen {
		r.state = Idle
	}
	if from != height && r.onHeight != nil {
		r.onHeight(r, from, height)
	}
}

func (r *Row) floor(measured int) int {
	if measured < r.minHeight {
		return r.minHeight
	}
	return measured
}
