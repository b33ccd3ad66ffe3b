package library

import (
	"encoding/json"
	"time"
)

// Track is a song record.
type Track struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:text" json:"name"`
	Genre       string    `gorm:"type:text" json:"genre"`
	ReleaseYear int       `json:"release_year"`
	Artist      string    `gorm:"type:text;index" json:"artist"`
	Album       string    `gorm:"type:text" json:"album"`
	Duration    int       `json:"duration"` // minutes
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Users []User `gorm:"many2many:likes;constraint:OnDelete:CASCADE" json:"-"`
}

// TrackPatch carries the fields of a partial track update. Nil fields are left
// untouched.
type TrackPatch struct {
	Name        *string `json:"name"`
	Genre       *string `json:"genre"`
	ReleaseYear *int    `json:"release_year"`
	Artist      *string `json:"artist"`
	Album       *string `json:"album"`
	Duration    *int    `json:"duration"`
}

func (p TrackPatch) apply(t *Track) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Genre != nil {
		t.Genre = *p.Genre
	}
	if p.ReleaseYear != nil {
		t.ReleaseYear = *p.ReleaseYear
	}
	if p.Artist != nil {
		t.Artist = *p.Artist
	}
	if p.Album != nil {
		t.Album = *p.Album
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
}

// Attributes is the open set of user fields.
type Attributes map[string]any

// reserved keys are owned by the row and never stored in Attributes
var reserved = []string{"id", "createdAt", "updatedAt"}

func (a Attributes) merge(src Attributes) Attributes {
	if a == nil {
		a = make(Attributes, len(src))
	}
	for k, v := range src {
		a[k] = v
	}
	for _, k := range reserved {
		delete(a, k)
	}
	return a
}

// User is a listener. Apart from the row metadata its fields are free-form.
type User struct {
	ID         uint       `gorm:"primaryKey"`
	Attributes Attributes `gorm:"type:text;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Tracks []Track `gorm:"many2many:likes;constraint:OnDelete:CASCADE"`
}

// MarshalJSON flattens Attributes into the user object.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Attributes)+len(reserved))
	for k, v := range u.Attributes {
		out[k] = v
	}
	out["id"] = u.ID
	out["createdAt"] = u.CreatedAt
	out["updatedAt"] = u.UpdatedAt
	return json.Marshal(out)
}

// Like joins a user to a track they like.
type Like struct {
	UserID    uint `gorm:"primaryKey"`
	TrackID   uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
