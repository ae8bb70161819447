package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	Timestamp
}

// UserDietaryRestriction stores a user's dietary preference, drawn from
// the same dietary_restrictions table recipes link against.
type UserDietaryRestriction struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DietaryRestrictionID uint      `gorm:"primaryKey" json:"dietary_restriction_id"`

	User               *User               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DietaryRestriction *DietaryRestriction `gorm:"foreignKey:DietaryRestrictionID;constraint:OnDelete:CASCADE"`
}
