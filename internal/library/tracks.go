package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tracks returns every track in id order.
func (s *Store) Tracks(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if err := s.db.WithContext(ctx).Order("id").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	return tracks, nil
}

// Track returns the track with the given id or ErrNotFound.
func (s *Store) Track(ctx context.Context, id uint) (*Track, error) {
	if t, ok := s.cache.get(id); ok {
		return &t, nil
	}

	var t Track
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query track: %w", err)
	}

	s.cache.add(t)
	return &t, nil
}

// TracksByArtist returns the tracks whose artist equals artist exactly.
func (s *Store) TracksByArtist(ctx context.Context, artist string) ([]Track, error) {
	var tracks []Track
	err := s.db.WithContext(ctx).Where("artist = ?", artist).Order("id").Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks by artist: %w", err)
	}
	return tracks, nil
}

// TracksByReleaseYear returns every track sorted by release year.
func (s *Store) TracksByReleaseYear(ctx context.Context, order SortOrder) ([]Track, error) {
	var tracks []Track
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "release_year"}, Desc: order == Descending}).
		Order("id").
		Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sort tracks: %w", err)
	}
	return tracks, nil
}

// CreateTrack inserts t. The id and timestamps are always assigned by the
// database.
func (s *Store) CreateTrack(ctx context.Context, t *Track) error {
	t.ID = 0
	t.CreatedAt, t.UpdatedAt = time.Time{}, time.Time{}
	t.Users = nil
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}
	return nil
}

// UpdateTrack overwrites the fields set in p on track id.
func (s *Store) UpdateTrack(ctx context.Context, id uint, p TrackPatch) (*Track, error) {
	db := s.db.WithContext(ctx)

	var t Track
	err := db.Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query track: %w", err)
	}

	p.apply(&t)
	if err := db.Save(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to update track: %w", err)
	}

	s.cache.evict(id)
	return &t, nil
}

// DeleteTrack removes track id, returning ErrNotFound if no row matched.
func (s *Store) DeleteTrack(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Track{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete track: %w", result.Error)
	}

	s.cache.evict(id)
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
