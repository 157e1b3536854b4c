package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bld/internal/apperr"
	"bld/internal/auth"
	"bld/internal/storage/sqlite"
)

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// handleLogin checks credentials and opens a cookie session.
func (s *Server) handleLogin(c *gin.Context) {
	if !s.loginLimiter.Allow(c.ClientIP()) {
		s.respondError(c, apperr.ErrTooManyRequests)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	user, err := s.store.FindUserByLogin(c.Request.Context(), req.Login)
	if errors.Is(err, sqlite.ErrNotFound) {
		s.respondError(c, apperr.ErrInvalidCredentials)
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		s.respondError(c, apperr.ErrInvalidCredentials)
		return
	}

	token, expires, err := s.sessions.Issue(user)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.setSessionCookie(c, token, int(time.Until(expires).Seconds()))
	s.logger.Info("user logged in", "user", user.ID)
	respondSuccess(c, http.StatusOK, gin.H{
		"user":      user.Member(),
		"token":     token,
		"expiresAt": expires.UTC(),
	})
}

// handleLogout drops the session cookie. Tokens are stateless, so nothing else is revoked.
func (s *Server) handleLogout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	respondSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// handleSession returns the member behind the current session.
func (s *Server) handleSession(c *gin.Context) {
	user, err := s.store.GetUser(c.Request.Context(), currentUserID(c))
	if errors.Is(err, sqlite.ErrNotFound) {
		s.respondError(c, apperr.ErrUnauthorized)
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"user": user.Member()})
}

func (s *Server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, value, maxAge, "/", "", s.secureCookie, true)
}
