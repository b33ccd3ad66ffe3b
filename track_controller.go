package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/library"
)

func (s *Server) listTracks(c *gin.Context) {
	tracks, err := s.store.Tracks(c.Request.Context())
	if err != nil {
		fail(c, "Error fetching tracks", "", err)
		return
	}
	if len(tracks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No tracks found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (s *Server) trackDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, "Error fetching a track by Id", "Track not found.", err)
		return
	}

	t, err := s.store.Track(c.Request.Context(), id)
	if err != nil {
		fail(c, "Error fetching a track by Id", "Track not found.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": t})
}

func (s *Server) tracksByArtist(c *gin.Context) {
	tracks, err := s.store.TracksByArtist(c.Request.Context(), c.Param("artist"))
	if err != nil {
		fail(c, "Error fetching track by an artist", "", err)
		return
	}
	if len(tracks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Track not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (s *Server) sortTracksByReleaseYear(c *gin.Context) {
	order, err := library.ParseSortOrder(c.Query("order"))
	if err != nil {
		fail(c, "Error sorting the tracks", "", err)
		return
	}

	tracks, err := s.store.TracksByReleaseYear(c.Request.Context(), order)
	if err != nil {
		fail(c, "Error sorting the tracks", "", err)
		return
	}
	if len(tracks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No tracks found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (s *Server) addTrack(c *gin.Context) {
	var request struct {
		NewTrack library.Track `json:"newTrack"`
	}
	if err := bindBody(c, &request); err != nil {
		fail(c, "Error adding new track.", "", err)
		return
	}

	t := request.NewTrack
	if err := s.store.CreateTrack(c.Request.Context(), &t); err != nil {
		fail(c, "Error adding new track.", "", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"newTrack": t})
}

func (s *Server) updateTrack(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, "Error updating the Id", "Track not found.", err)
		return
	}

	var patch library.TrackPatch
	if err := bindBody(c, &patch); err != nil {
		fail(c, "Error updating the Id", "", err)
		return
	}

	t, err := s.store.UpdateTrack(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, "Error updating the Id", "Track not found.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Track updated successfully.", "updatedTrack": t})
}

func (s *Server) deleteTrack(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		fail(c, "Error deleting the track by Id", "", err)
		return
	}

	id, err := coerceID(gjson.GetBytes(body, "id"))
	if err == nil {
		err = s.store.DeleteTrack(c.Request.Context(), id)
	}
	if err != nil {
		fail(c, "Error deleting the track by Id", "Track not found.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Track record has been deleted successfully."})
}
