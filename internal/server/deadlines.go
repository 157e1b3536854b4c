package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bld/internal/models"
)

type deadlineRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"`
	Project     string `json:"project" binding:"omitempty,project"`
}

func (s *Server) handleListDeadlines(c *gin.Context) {
	project := models.ProjectOrDefault(c.Query("project"))

	deadlines, err := s.store.ListDeadlines(c.Request.Context(), currentUserID(c), project)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, deadlines)
}

func (s *Server) handleCreateDeadline(c *gin.Context) {
	var req deadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}
	date, err := parseDate(req.Deadline)
	if err != nil {
		s.respondError(c, err)
		return
	}

	deadline, err := s.store.CreateDeadline(c.Request.Context(), models.Deadline{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    date,
		Project:     models.ProjectOrDefault(req.Project),
		UserID:      currentUserID(c),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, deadline)
}

func (s *Server) handleDeleteDeadline(c *gin.Context) {
	if err := s.store.DeleteDeadline(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Deadline deleted"})
}
