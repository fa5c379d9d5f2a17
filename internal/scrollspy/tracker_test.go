package scrollspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSections() StaticLayout {
	return StaticLayout{
		Hero:   {Top: 0, Height: 800},
		About:  {Top: 800, Height: 800},
		Skills: {Top: 1600, Height: 600},
	}
}

func TestSections_Order(t *testing.T) {
	assert.Equal(t, []SectionID{Hero, About, Skills, Projects, Experience, Education, Contact}, Sections())

	got := Sections()
	got[0] = Contact
	assert.Equal(t, Hero, Sections()[0], "Sections must return a copy")
}

func TestParseSection(t *testing.T) {
	id, ok := ParseSection("experience")
	assert.True(t, ok)
	assert.Equal(t, Experience, id)

	_, ok = ParseSection("Experience")
	assert.False(t, ok)
	_, ok = ParseSection("")
	assert.False(t, ok)
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Top: 800, Height: 800}
	assert.True(t, b.Contains(800))
	assert.True(t, b.Contains(1599.9))
	assert.False(t, b.Contains(1600))
	assert.False(t, b.Contains(799))
}

func TestLocate(t *testing.T) {
	layout := threeSections()

	tests := []struct {
		name   string
		offset float64
		want   SectionID
		found  bool
	}{
		{"top of page", 0, Hero, true},
		{"about approaching", 750, About, true},
		{"exact boundary", 700, About, true},
		{"just before boundary", 699, Hero, true},
		{"skills", 1600, Skills, true},
		{"below last section", 2100, "", false},
		{"above first section", -200, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(layout, tt.offset, DefaultLookahead)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocate_SkipsUnmounted(t *testing.T) {
	layout := StaticLayout{
		About: {Top: 0, Height: 500},
	}
	got, ok := Locate(layout, 0, DefaultLookahead)
	require.True(t, ok)
	assert.Equal(t, About, got)
}

func TestLocate_FirstMatchWins(t *testing.T) {
	layout := StaticLayout{
		Hero:  {Top: 0, Height: 1000},
		About: {Top: 500, Height: 1000},
	}
	got, ok := Locate(layout, 600, 0)
	require.True(t, ok)
	assert.Equal(t, Hero, got)
}

func TestTracker_InitialState(t *testing.T) {
	assert.Equal(t, Hero, NewTracker().Active())
	assert.Equal(t, Skills, NewTracker(WithInitial(Skills)).Active())
	assert.Equal(t, Hero, NewTracker(WithInitial("footer")).Active())
}

func TestTracker_Observe(t *testing.T) {
	var changes []SectionID
	tr := NewTracker(OnChange(func(id SectionID) { changes = append(changes, id) }))

	id, ok := tr.Observe(750, threeSections())
	assert.True(t, ok)
	assert.Equal(t, About, id)
	assert.Equal(t, About, tr.Active())

	id, ok = tr.Observe(5000, threeSections())
	assert.False(t, ok)
	assert.Equal(t, About, id, "no match retains the previous section")
	assert.Equal(t, About, tr.Active())

	tr.Observe(0, threeSections())
	assert.Equal(t, Hero, tr.Active())

	assert.Equal(t, []SectionID{About, Hero}, changes)
}

func TestTracker_StaysInsideSectionInterval(t *testing.T) {
	layout := threeSections()
	tr := NewTracker()
	for id, b := range layout {
		for y := b.Top + 1; y < b.Top+b.Height; y += 37 {
			tr.Observe(y-DefaultLookahead, layout)
			assert.Equal(t, id, tr.Active(), "offset %v", y-DefaultLookahead)
		}
	}
}

func TestTracker_Lookahead(t *testing.T) {
	tr := NewTracker(WithLookahead(0))
	assert.Equal(t, 0.0, tr.Lookahead())

	tr.Observe(750, threeSections())
	assert.Equal(t, Hero, tr.Active())
}

func TestTracker_NeverUnset(t *testing.T) {
	tr := NewTracker()
	offsets := []float64{-1000, 0, 5000, 900, -1, 3000}
	for _, off := range offsets {
		tr.Observe(off, threeSections())
		assert.True(t, tr.Active().Valid())
	}
	tr.Observe(0, StaticLayout{})
	assert.True(t, tr.Active().Valid())
}
