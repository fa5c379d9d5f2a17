package site

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrezeni/portfolio/internal/apperror"
	"github.com/andrezeni/portfolio/internal/scrollspy"
)

type sectionMeasure struct {
	ID     string  `json:"id" binding:"required"`
	Top    float64 `json:"top"`
	Height float64 `json:"height" binding:"gte=0"`
}

// navRequest is one scroll tick as measured by the browser.
type navRequest struct {
	Offset   float64          `json:"offset"`
	Current  string           `json:"current"`
	Sections []sectionMeasure `json:"sections" binding:"dive"`
}

type navResponse struct {
	Active  scrollspy.SectionID `json:"active"`
	Matched bool                `json:"matched"`
}

func (r navRequest) layout() (scrollspy.StaticLayout, error) {
	layout := make(scrollspy.StaticLayout, len(r.Sections))
	for _, m := range r.Sections {
		id, ok := scrollspy.ParseSection(m.ID)
		if !ok {
			return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown section %q", m.ID), nil)
		}
		layout[id] = scrollspy.Bounds{Top: m.Top, Height: m.Height}
	}
	return layout, nil
}

// handleNav recomputes the active section for a scroll tick and returns the
// navigation fragment, or JSON when the client asks for it.
func (s *Server) handleNav(c *gin.Context) {
	var req navRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("malformed scroll measurement", err))
		return
	}
	layout, err := req.layout()
	if err != nil {
		c.Error(err)
		return
	}

	previous, _ := scrollspy.ParseSection(req.Current)
	tracker := scrollspy.NewTracker(
		scrollspy.WithLookahead(s.cfg.Scrollspy.Lookahead),
		scrollspy.WithInitial(previous),
	)
	active, matched := tracker.Observe(req.Offset, layout)

	if matched && active != previous && s.store != nil {
		s.recordSection(c, active)
	}

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, navResponse{Active: active, Matched: matched})
	default:
		c.HTML(http.StatusOK, "nav", buildNav(active))
	}
}

func (s *Server) recordSection(c *gin.Context, id scrollspy.SectionID) {
	if c.GetHeader("DNT") == "1" {
		return
	}
	s.track(c, id)
}
