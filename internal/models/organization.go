package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Organization struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	Name       string            `gorm:"size:200;not null" json:"name"`
	OrgType    int               `gorm:"index" json:"orgType"`
	Status     int               `gorm:"default:1" json:"status"`
	ParentID   string            `gorm:"size:36;index" json:"parentId"`
	Sort       int               `json:"sort"`
	Additional datatypes.JSONMap `gorm:"type:json" json:"additional,omitempty"`
	CreatedAt  time.Time         `json:"createTs"`
	UpdatedAt  time.Time         `json:"updateTs"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (o Organization) CursorKey() (string, time.Time) {
	return o.ID, o.CreatedAt
}
