package web

import (
	"net/http"
	"time"

	"donorjourney/internal/logging"
	"donorjourney/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID reuses a well-formed incoming X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logging.Get(logging.CategoryHTTP)
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(ctxRequestID),
		}
		if len(c.Errors) > 0 {
			log.Errorw(c.Errors.String(), fields...)
			return
		}
		log.Infow("request", fields...)
	}
}

// sessionMiddleware attaches the caller's Controller, creating a session when
// none is known. The cookie is re-issued on every page so its lifetime tracks
// the server-side idle TTL.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(SessionCookie)
		id, ctl, created := s.store.Resolve(cookie)
		if created {
			logging.Get(logging.CategoryHTTP).Debugw("session created", "request_id", c.GetString(ctxRequestID))
		}
		s.setSessionCookie(c, id, int(s.sessionTTL().Seconds()))
		c.Set(ctxSessionID, id)
		c.Set(ctxController, ctl)
		c.Next()
	}
}

// setSessionCookie writes the session cookie; a negative maxAge deletes it.
func (s *Server) setSessionCookie(c *gin.Context, id string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, maxAge, "/", "", false, true)
}

func (s *Server) sessionTTL() time.Duration {
	if d, err := time.ParseDuration(s.cfg.SessionTTL); err == nil && d > 0 {
		return d
	}
	return 2 * time.Hour
}

func controller(c *gin.Context) *session.Controller {
	return c.MustGet(ctxController).(*session.Controller)
}
