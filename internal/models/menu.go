package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Menu struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	Name       string            `gorm:"size:200;not null" json:"name"`
	Path       string            `gorm:"size:255" json:"path"`
	Icon       string            `gorm:"size:100" json:"icon"`
	Component  string            `gorm:"size:200" json:"component"`
	MenuType   int               `gorm:"index" json:"menuType"`
	ParentID   string            `gorm:"size:36;index" json:"parentId"`
	Sort       int               `json:"sort"`
	Hidden     bool              `gorm:"default:false" json:"hidden"`
	Additional datatypes.JSONMap `gorm:"type:json" json:"additional,omitempty"`
	CreatedAt  time.Time         `json:"createTs"`
	UpdatedAt  time.Time         `json:"updateTs"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m Menu) CursorKey() (string, time.Time) {
	return m.ID, m.CreatedAt
}
