package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/library"
)

const shutdownTimeout = 5 * time.Second

// Server serves the tracks API over a Store.
type Server struct {
	store  *library.Store
	logger *log.Logger
	engine *gin.Engine
}

// NewServer builds the gin engine and registers every route.
func NewServer(store *library.Store, logger *log.Logger, debug bool) *Server {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		store:  store,
		logger: logger,
		engine: gin.New(),
	}
	recovery := logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}).Writer()
	s.engine.Use(RequestID(), Logger(logger), gin.RecoveryWithWriter(recovery), Cors())
	s.routes()
	return s
}

// routes registers the API:
//
//	GET  /seed_db                       reset and reseed the tables
//	GET  /tracks                        list all tracks
//	GET  /tracks/details/:id            one track by id
//	GET  /tracks/artist/:artist         tracks by exact artist
//	GET  /tracks/sort/release_year      tracks by release year, ?order=ASC|DESC
//	POST /tracks/new                    {"newTrack": {...}}
//	POST /tracks/update/:id             partial track fields
//	POST /tracks/delete                 {"id": n}
//	POST /users/new                     {"newUser": {...}}
//	POST /users/update/:id              partial user fields
func (s *Server) routes() {
	g := s.engine
	g.GET("/seed_db", s.seedDB)

	g.GET("/tracks", s.listTracks)
	g.GET("/tracks/details/:id", s.trackDetails)
	g.GET("/tracks/artist/:artist", s.tracksByArtist)
	g.GET("/tracks/sort/release_year", s.sortTracksByReleaseYear)
	g.POST("/tracks/new", s.addTrack)
	g.POST("/tracks/update/:id", s.updateTrack)
	g.POST("/tracks/delete", s.deleteTrack)

	g.POST("/users/new", s.addUser)
	g.POST("/users/update/:id", s.updateUser)
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server is running", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
