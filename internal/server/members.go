package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleListMembers returns the global roster; it is not scoped to the caller.
func (s *Server) handleListMembers(c *gin.Context) {
	members, err := s.store.ListMembers(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, members)
}
