package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bld/internal/dashboard"
)

type projectResponse struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// handleListProjects returns the fixed project tags with their display label and theme color.
func (s *Server) handleListProjects(c *gin.Context) {
	options := dashboard.Shell{}.Projects()
	projects := make([]projectResponse, 0, len(options))
	for _, p := range options {
		shell := dashboard.ParseShell(p.Tag, "")
		projects = append(projects, projectResponse{
			Tag:   p.Tag,
			Label: p.Label,
			Color: shell.ThemeColor(),
		})
	}
	respondSuccess(c, http.StatusOK, projects)
}
