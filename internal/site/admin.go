package site

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrezeni/portfolio/internal/apperror"
	"github.com/andrezeni/portfolio/internal/logger"
	"github.com/andrezeni/portfolio/internal/visitors"
)

const adminCookie = "admin_token"

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) adminEnabled() bool {
	return s.cfg.Admin.Username != "" && s.cfg.Admin.Password != ""
}

func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equalConstantTime(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireStore rejects stats routes while visitor tracking is disabled.
func (s *Server) requireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.store == nil {
			c.Error(apperror.NewNotFound("visitor store", "disabled"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// rejectLogin re-renders the login form with the error's message and status.
func rejectLogin(c *gin.Context, log logger.Logger, err *apperror.AppError, client string) {
	log.Warn("admin login rejected", zap.String("client", client), zap.String("details", err.Details))
	c.HTML(apperror.ToHTTPStatus(err), "admin-login.html", gin.H{"error": err.Message})
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":           "Privacy Policy",
			"retentionMonths": 12,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		log := requestLog(c, s.log)
		who := s.hasher.Hash(c.ClientIP())
		if !s.adminEnabled() {
			rejectLogin(c, log, apperror.New(apperror.ErrUnauthorized, "Admin access is disabled",
				"no admin credentials are configured", nil), who)
			return
		}

		username := c.PostForm("username")
		password := c.PostForm("password")
		if !equalConstantTime(username, s.cfg.Admin.Username) || !equalConstantTime(password, s.cfg.Admin.Password) {
			rejectLogin(c, log, apperror.NewUnauthorized("username or password mismatch"), who)
			return
		}

		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", s.cfg.App.Env == "production", true)
		log.Info("admin login", zap.String("client", who))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.cfg.App.Env == "production", true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware(), s.requireStore())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.Error(apperror.NewInternal("load visitor stats", err))
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.Error(apperror.NewInternal("load visitor stats", err))
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visits, err := s.store.Recent(c.Request.Context(), 200)
		if err != nil {
			c.Error(apperror.NewInternal("load visitors", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"visitors": visits})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.Error(apperror.NewInternal("export visitor stats", err))
			return
		}
		c.Header("Content-Disposition", "attachment; filename=visitor-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.store.Cleanup(c.Request.Context(), time.Now().Add(-visitors.Retention))
		if err != nil {
			c.Error(apperror.NewInternal("cleanup visitors", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}
