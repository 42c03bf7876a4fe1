package model

import "time"

// User is a registered account: the profile/role store behind role-based
// routing. Role is trusted verbatim once stored.
type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	NIM          string `gorm:"not null;uniqueIndex" json:"nim"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"not null" json:"email"`
	Role         string `gorm:"not null" json:"role"`
	PasswordHash string `gorm:"not null" json:"-"`

	BirthPlace string `json:"birth_place,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
