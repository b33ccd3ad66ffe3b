package library

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CreateUser stores a new user holding attrs.
func (s *Store) CreateUser(ctx context.Context, attrs Attributes) (*User, error) {
	u := User{Attributes: Attributes{}.merge(attrs)}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &u, nil
}

// UpdateUser merges attrs into user id.
func (s *Store) UpdateUser(ctx context.Context, id uint, attrs Attributes) (*User, error) {
	db := s.db.WithContext(ctx)

	var u User
	err := db.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	u.Attributes = u.Attributes.merge(attrs)
	if err := db.Save(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}
