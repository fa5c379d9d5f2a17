package scrollspy

// ScrollBehavior selects how a scroll request is animated.
type ScrollBehavior int

const (
	Instant ScrollBehavior = iota
	Smooth
)

// Viewport is the scrolling surface a Page is mounted on.
type Viewport interface {
	Layout
	ScrollY() float64
	// Subscribe registers fn for scroll events and returns its release func.
	Subscribe(fn func()) (unsubscribe func())
	ScrollTo(y float64, behavior ScrollBehavior)
}

// Navigator moves a viewport to a section.
type Navigator struct {
	vp Viewport
}

func NewNavigator(vp Viewport) *Navigator { return &Navigator{vp: vp} }

// Navigate requests a smooth scroll aligning id's top with the viewport top.
// It reports false and does nothing when the anchor is not mounted. The
// active section changes later through the scroll events that follow.
func (n *Navigator) Navigate(id SectionID) bool {
	b, ok := n.vp.Bounds(id)
	if !ok {
		return false
	}
	n.vp.ScrollTo(b.Top, Smooth)
	return true
}

// Page binds a Tracker to a Viewport for the page's lifetime.
type Page struct {
	vp      Viewport
	tracker *Tracker
	nav     *Navigator
	release func()
}

func NewPage(vp Viewport, opts ...Option) *Page {
	return &Page{vp: vp, tracker: NewTracker(opts...), nav: NewNavigator(vp)}
}

// Mount registers the scroll listener. Calling it again is a no-op.
func (p *Page) Mount() {
	if p.release != nil {
		return
	}
	p.release = p.vp.Subscribe(p.handleScroll)
}

// Unmount releases the scroll listener registered by Mount.
func (p *Page) Unmount() {
	if p.release == nil {
		return
	}
	p.release()
	p.release = nil
}

// Mounted reports whether the scroll listener is registered.
func (p *Page) Mounted() bool { return p.release != nil }

func (p *Page) Active() SectionID { return p.tracker.Active() }

func (p *Page) Navigate(id SectionID) bool { return p.nav.Navigate(id) }

func (p *Page) handleScroll() {
	p.tracker.Observe(p.vp.ScrollY(), p.vp)
}
