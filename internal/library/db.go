// Package library is the storage client for tracks, users and likes.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidOrder = errors.New("invalid sort order")
)

// Options configures Open.
type Options struct {
	Driver       string // "sqlite" or "postgres"
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	CacheSize    int
	CacheTTL     time.Duration
	Logger       *log.Logger
}

// Store wraps the database connection pool and the track lookup cache.
type Store struct {
	db    *gorm.DB
	cache *trackCache
}

// Open connects to the database described by o.
func Open(o Options) (*Store, error) {
	var dialector gorm.Dialector
	switch o.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(o.DSN)
	case "postgres":
		dialector = postgres.Open(o.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", o.Driver)
	}

	cfg := &gorm.Config{}
	if o.Logger != nil {
		cfg.Logger = logger.New(
			o.Logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	if o.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	}
	if o.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	err = db.SetupJoinTable(&Track{}, "Users", &Like{})
	if err == nil {
		err = db.SetupJoinTable(&User{}, "Tracks", &Like{})
	}
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to set up likes join table: %w", err)
	}

	return &Store{
		db:    db,
		cache: newTrackCache(o.CacheSize, o.CacheTTL),
	}, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Reset drops every table, recreates them from the models and inserts the
// seed tracks.
func (s *Store) Reset(ctx context.Context) error {
	defer s.cache.purge()

	db := s.db.WithContext(ctx)
	m := db.Migrator()
	if err := m.DropTable(&Like{}, &User{}, &Track{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := m.AutoMigrate(&Track{}, &User{}, &Like{}); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tracks := SeedTracks()
	if err := db.Create(&tracks).Error; err != nil {
		return fmt.Errorf("failed to insert seed tracks: %w", err)
	}
	return nil
}

// SortOrder is the direction of a release year sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// ParseSortOrder reads ASC or DESC in any case. An empty string is ASC.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ASC":
		return Ascending, nil
	case "DESC":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
}

func (o SortOrder) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}
