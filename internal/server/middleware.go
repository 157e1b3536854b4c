package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bld/internal/apperr"
	"bld/internal/auth"
)

const (
	sessionCookie = "bld_session"
	ctxClaimsKey  = "bld.claims"
)

// requestLogger records one line per request once the handler chain has finished.
func (s *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	attrs := []any{
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", time.Since(start)),
	}
	if claims, ok := sessionFrom(c); ok {
		attrs = append(attrs, slog.String("user", claims.Subject))
	}
	s.logger.Info("request", attrs...)
}

// requireSession rejects API calls without a valid session before any store access.
func (s *Server) requireSession(c *gin.Context) {
	claims, err := s.resolveSession(c.Request)
	if err != nil {
		s.respondError(c, apperr.ErrUnauthorized)
		return
	}
	c.Set(ctxClaimsKey, claims)
	c.Next()
}

// requirePageSession sends browsers without a session to the login page.
func (s *Server) requirePageSession(c *gin.Context) {
	claims, err := s.resolveSession(c.Request)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Set(ctxClaimsKey, claims)
	c.Next()
}

// resolveSession reads the session token from the cookie or a bearer header.
func (s *Server) resolveSession(r *http.Request) (*auth.Claims, error) {
	token := ""
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		token = cookie.Value
	}
	if header := r.Header.Get("Authorization"); token == "" && strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return s.sessions.Verify(token)
}

func sessionFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// currentUserID is only valid behind requireSession or requirePageSession.
func currentUserID(c *gin.Context) string {
	claims, _ := sessionFrom(c)
	if claims == nil {
		return ""
	}
	return claims.Subject
}
