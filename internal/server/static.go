package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mountStatic serves a compiled frontend when one is configured and falls back
// to the built-in dashboard otherwise.
func (s *Server) mountStatic() {
	s.engine.NoRoute(s.handleNotFound)

	if s.staticDir == "" {
		s.engine.GET("/", redirectToDashboard)
		return
	}

	info, err := os.Stat(s.staticDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("static directory missing; serving built-in dashboard", "path", s.staticDir, "error", err)
		s.engine.GET("/", redirectToDashboard)
		return
	}

	indexPath := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		s.logger.Warn("index.html not found", "path", indexPath, "error", err)
		s.engine.GET("/", redirectToDashboard)
	} else {
		s.engine.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})
		s.engine.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				s.handleNotFound(c)
				return
			}
			c.File(indexPath)
		})
	}

	assetsDir := filepath.Join(s.staticDir, "assets")
	if _, err := os.Stat(assetsDir); err == nil {
		s.engine.StaticFS("/assets", gin.Dir(assetsDir, true))
	}

	favicon := filepath.Join(s.staticDir, "favicon.ico")
	if _, err := os.Stat(favicon); err == nil {
		s.engine.StaticFile("/favicon.ico", favicon)
	}
}

func (s *Server) handleNotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}

func redirectToDashboard(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
