package site

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andrezeni/portfolio/internal/apperror"
	"github.com/andrezeni/portfolio/internal/logger"
	"github.com/andrezeni/portfolio/internal/scrollspy"
	"github.com/andrezeni/portfolio/internal/visitors"
)

const (
	HeaderRequestID        = "X-Request-ID"
	GinContextKeyRequestID = "requestID"
	GinContextKeyLogger    = "logger"
)

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		reqLog := log.With(zap.String("request_id", id))
		c.Set(GinContextKeyLogger, reqLog)

		c.Next()

		reqLog.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// requestLog returns the request-scoped logger set by RequestLogger, or
// fallback when the middleware did not run.
func requestLog(c *gin.Context, fallback logger.Logger) logger.Logger {
	if l, ok := c.Get(GinContextKeyLogger); ok {
		if reqLog, ok := l.(logger.Logger); ok {
			return reqLog
		}
	}
	return fallback
}

// ErrorMiddleware renders the last error a handler pushed with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}
		status := apperror.ToHTTPStatus(appErr)
		reqLog := requestLog(c, log)
		if status >= 500 {
			reqLog.Error("request failed", err, zap.String("path", c.Request.URL.Path))
		} else {
			reqLog.Warn("request rejected", zap.String("path", c.Request.URL.Path), zap.String("details", appErr.Details))
		}
		c.JSON(status, appErr.ToJSON())
	}
}

var untrackedPrefixes = []string{
	"/static/", "/images/", "/assets/", "/admin", "/favicon", "/privacy", "/nav", "/api/", "/healthz",
}

// visitorTracking records page views with hashed client addresses. Static
// files, admin pages and requests carrying DNT: 1 are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		section, _ := scrollspy.ParseSection(c.Query("section"))
		s.track(c, section)
		c.Next()
	}
}

// track stores the visit in the background so page rendering never waits on
// sqlite. Wait blocks until every pending write has finished.
func (s *Server) track(c *gin.Context, section scrollspy.SectionID) {
	v := visitors.Visit{
		HashedIP:  s.hasher.Hash(c.ClientIP()),
		UserAgent: c.GetHeader("User-Agent"),
		Path:      c.Request.URL.Path,
		Section:   string(section),
	}
	log := requestLog(c, s.log)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.Record(ctx, v); err != nil {
			log.Error("record visit", err, zap.String("path", v.Path), zap.String("section", v.Section))
		}
	}()
}

// Wait returns once all background visit writes are done. Call it after the
// HTTP server has shut down and before closing the store.
func (s *Server) Wait() {
	s.pending.Wait()
}
