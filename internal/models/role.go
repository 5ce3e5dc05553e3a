package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	OrgID       string `gorm:"size:36;index" json:"orgId"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Slug        string `gorm:"size:200;not null" json:"slug"`
	Description string `json:"description"`
	IsSystem    bool   `gorm:"default:false" json:"isSystem"`
	CreatedAt   time.Time `json:"createTs"`
	UpdatedAt   time.Time `json:"updateTs"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
