package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) seedDB(c *gin.Context) {
	if err := s.store.Reset(c.Request.Context()); err != nil {
		fail(c, "Error seeding the data", "", err)
		return
	}
	s.logger.Info("database seeded")
	c.JSON(http.StatusOK, gin.H{"message": "Database seeding successful."})
}
