package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/library"
)

func (s *Server) addUser(c *gin.Context) {
	var request struct {
		NewUser library.Attributes `json:"newUser"`
	}
	if err := bindBody(c, &request); err != nil {
		fail(c, "Error creating a new user", "", err)
		return
	}

	u, err := s.store.CreateUser(c.Request.Context(), request.NewUser)
	if err != nil {
		fail(c, "Error creating a new user", "", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"newData": u})
}

func (s *Server) updateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, "Error updating the user", "User not found.", err)
		return
	}

	var attrs library.Attributes
	if err := bindBody(c, &attrs); err != nil {
		fail(c, "Error updating the user", "", err)
		return
	}

	u, err := s.store.UpdateUser(c.Request.Context(), id, attrs)
	if err != nil {
		fail(c, "Error updating the user", "User not found.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully.", "updatedUser": u})
}
