package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bld/internal/models"
)

type taskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"`
	Project     string `json:"project" binding:"omitempty,project"`
}

type taskUpdateRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// handleListTasks returns the caller's tasks for a project.
func (s *Server) handleListTasks(c *gin.Context) {
	project := models.ProjectOrDefault(c.Query("project"))

	tasks, err := s.store.ListTasks(c.Request.Context(), currentUserID(c), project)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, tasks)
}

// handleCreateTask inserts a new task owned by the caller.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		s.respondError(c, err)
		return
	}

	task, err := s.store.CreateTask(c.Request.Context(), models.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Project:     models.ProjectOrDefault(req.Project),
		UserID:      currentUserID(c),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, task)
}

// handleUpdateTask sets the completion flag of one of the caller's tasks.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	task, err := s.store.SetTaskCompleted(c.Request.Context(), currentUserID(c), c.Param("id"), *req.Completed)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, task)
}

// handleDeleteTask removes one of the caller's tasks.
func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.store.DeleteTask(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Task deleted"})
}
