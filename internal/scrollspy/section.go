// Package scrollspy tracks which page section is in view and scrolls the
// viewport to a section on request.
//
// Locate and Tracker are what the server runs for each POST /nav. Page,
// Viewport and Navigator model the browser page lifecycle instead: mounting
// the scroll listener once, releasing it on unmount, and smooth-scrolling on
// a nav click. static/scrollspy.js in the site package follows that
// lifecycle in the browser, so these types have no server-side caller.
package scrollspy

// SectionID names a page anchor.
type SectionID string

const (
	Hero       SectionID = "hero"
	About      SectionID = "about"
	Skills     SectionID = "skills"
	Projects   SectionID = "projects"
	Experience SectionID = "experience"
	Education  SectionID = "education"
	Contact    SectionID = "contact"
)

// DefaultLookahead is how far below the scroll offset the reading point sits, so the
// section about to fill the viewport is highlighted rather than the one leaving it.
const DefaultLookahead = 100.0

var sections = [...]SectionID{Hero, About, Skills, Projects, Experience, Education, Contact}

// Sections returns every section in top-to-bottom page order.
func Sections() []SectionID {
	out := make([]SectionID, len(sections))
	copy(out, sections[:])
	return out
}

// ParseSection maps s onto a known section.
func ParseSection(s string) (SectionID, bool) {
	for _, id := range sections {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Valid reports whether id is one of the page sections.
func (id SectionID) Valid() bool {
	_, ok := ParseSection(string(id))
	return ok
}

func (id SectionID) String() string { return string(id) }

// Bounds is the measured vertical extent of a rendered section.
type Bounds struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y falls in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout reports section measurements. ok is false while a section is not mounted.
type Layout interface {
	Bounds(id SectionID) (b Bounds, ok bool)
}

// StaticLayout is a Layout backed by a fixed set of measurements.
type StaticLayout map[SectionID]Bounds

func (l StaticLayout) Bounds(id SectionID) (Bounds, bool) {
	b, ok := l[id]
	return b, ok
}

// Locate returns the first section, in page order, whose bounds contain
// offset+lookahead. ok is false when no mounted section contains that point.
func Locate(layout Layout, offset, lookahead float64) (SectionID, bool) {
	y := offset + lookahead
	for _, id := range sections {
		b, ok := layout.Bounds(id)
		if !ok {
			continue
		}
		if b.Contains(y) {
			return id, true
		}
	}
	return "", false
}
