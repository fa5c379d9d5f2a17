// Package site serves the portfolio page and its supporting routes.
package site

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/andrezeni/portfolio/internal/config"
	"github.com/andrezeni/portfolio/internal/logger"
	"github.com/andrezeni/portfolio/internal/visitors"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type Server struct {
	cfg        config.Config
	log        logger.Logger
	store      *visitors.Store
	hasher     visitors.Hasher
	adminToken string
	engine     *gin.Engine
	pending    sync.WaitGroup
}

// New builds the router. store may be nil, which disables visitor tracking
// and the admin statistics routes.
func New(cfg config.Config, log logger.Logger, store *visitors.Store) (*Server, error) {
	hasher, err := visitors.RandomHasher()
	if err != nil {
		return nil, err
	}
	token, err := visitors.RandomToken()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        cfg,
		log:        log,
		store:      store,
		hasher:     hasher,
		adminToken: token,
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/assets", http.FS(assets))
	r.Static("/images", cfg.App.ImagesDir)
	r.Static("/static", cfg.App.StaticDir)

	if store != nil {
		r.Use(s.visitorTracking())
	}

	r.GET("/", s.handleIndex)
	r.POST("/nav", s.handleNav)
	r.GET("/api/content", s.handleContent)
	r.GET("/api/sections", s.handleSections)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)

	s.engine = r
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }
