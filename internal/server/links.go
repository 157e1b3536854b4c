package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bld/internal/models"
)

type linkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,url"`
	Type        string `json:"type" binding:"required"`
	Project     string `json:"project" binding:"omitempty,project"`
}

// handleListLinks returns the caller's links, optionally narrowed to one type.
func (s *Server) handleListLinks(c *gin.Context) {
	project := models.ProjectOrDefault(c.Query("project"))

	links, err := s.store.ListLinks(c.Request.Context(), currentUserID(c), project, c.Query("type"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, links)
}

func (s *Server) handleCreateLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	link, err := s.store.CreateLink(c.Request.Context(), models.Link{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Type:        req.Type,
		Project:     models.ProjectOrDefault(req.Project),
		UserID:      currentUserID(c),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, link)
}

func (s *Server) handleDeleteLink(c *gin.Context) {
	if err := s.store.DeleteLink(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Link deleted"})
}
