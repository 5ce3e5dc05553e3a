package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserStatus int

const (
	UserDisabled UserStatus = 0
	UserActive   UserStatus = 1
)

type User struct {
	ID           string            `gorm:"primaryKey;size:36" json:"id"`
	OrgID        string            `gorm:"size:36;index" json:"orgId"`
	Email        string            `gorm:"size:255;not null;index" json:"email"`
	Name         string            `gorm:"size:200" json:"name"`
	AuthProvider string            `gorm:"size:20;default:local" json:"-"`
	PasswordHash string            `gorm:"size:255" json:"-"`
	Status       UserStatus        `gorm:"default:1" json:"status"`
	Additional   datatypes.JSONMap `gorm:"type:json" json:"additional,omitempty"`
	CreatedAt    time.Time         `json:"createTs"`
	UpdatedAt    time.Time         `json:"updateTs"`
	Roles        []Role            `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u User) CursorKey() (string, time.Time) {
	return u.ID, u.CreatedAt
}
