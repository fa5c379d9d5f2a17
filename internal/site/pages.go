package site

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andrezeni/portfolio/internal/content"
	"github.com/andrezeni/portfolio/internal/scrollspy"
)

type navItem struct {
	ID     scrollspy.SectionID
	Label  string
	Active bool
}

type navData struct {
	Active scrollspy.SectionID
	Nav    []navItem
}

type pageData struct {
	navData
	Start       scrollspy.SectionID
	Owner       content.Profile
	Mailto      string
	AboutImage  string
	Skills      []content.Skill
	SkillGroups []content.SkillGroup
	Projects    []content.Project
	Experience  []content.Experience
	Education   []content.Education
}

// buildNav lists every section except the hero, which the brand name stands in for.
func buildNav(active scrollspy.SectionID) navData {
	var items []navItem
	for _, id := range scrollspy.Sections() {
		if id == scrollspy.Hero {
			continue
		}
		label := string(id)
		items = append(items, navItem{
			ID:     id,
			Label:  strings.ToUpper(label[:1]) + label[1:],
			Active: id == active,
		})
	}
	return navData{Active: active, Nav: items}
}

func (s *Server) handleIndex(c *gin.Context) {
	tracker := scrollspy.NewTracker(
		scrollspy.WithLookahead(s.cfg.Scrollspy.Lookahead),
		scrollspy.WithInitial(scrollspy.SectionID(c.Query("section"))),
	)
	owner := content.Owner()

	c.HTML(http.StatusOK, "index.html", pageData{
		navData:     buildNav(tracker.Active()),
		Start:       tracker.Active(),
		Owner:       owner,
		Mailto:      owner.MailtoURL(),
		AboutImage:  content.TechBackground,
		Skills:      content.Skills(),
		SkillGroups: content.SkillGroups(),
		Projects:    content.Projects(),
		Experience:  content.Experiences(),
		Education:   content.Educations(),
	})
}

func (s *Server) handleContent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile":      content.Owner(),
		"skills":       content.Skills(),
		"skill_groups": content.SkillGroups(),
		"projects":     content.Projects(),
		"experience":   content.Experiences(),
		"education":    content.Educations(),
	})
}

func (s *Server) handleSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections":  scrollspy.Sections(),
		"lookahead": s.cfg.Scrollspy.Lookahead,
	})
}
