package scrollspy

// Tracker holds the active section derived from scroll position.
// It is not safe for concurrent use; it belongs to one page instance.
type Tracker struct {
	lookahead float64
	active    SectionID
	onChange  func(SectionID)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLookahead overrides DefaultLookahead.
func WithLookahead(px float64) Option {
	return func(t *Tracker) { t.lookahead = px }
}

// WithInitial seeds the active section. Unknown ids are ignored.
func WithInitial(id SectionID) Option {
	return func(t *Tracker) {
		if id.Valid() {
			t.active = id
		}
	}
}

// OnChange registers fn to run whenever the active section is set.
func OnChange(fn func(SectionID)) Option {
	return func(t *Tracker) { t.onChange = fn }
}

// NewTracker returns a tracker whose active section is Hero.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{lookahead: DefaultLookahead, active: Hero}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Active returns the current section. It is never empty.
func (t *Tracker) Active() SectionID { return t.active }

// Lookahead returns the bias added to the scroll offset.
func (t *Tracker) Lookahead() float64 { return t.lookahead }

// Observe handles one scroll tick. The active section is set once when a
// section contains offset+lookahead and left alone otherwise.
func (t *Tracker) Observe(offset float64, layout Layout) (SectionID, bool) {
	id, ok := Locate(layout, offset, t.lookahead)
	if !ok {
		return t.active, false
	}
	t.active = id
	if t.onChange != nil {
		t.onChange(id)
	}
	return id, true
}
