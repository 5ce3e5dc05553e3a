package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Application struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	Name       string            `gorm:"size:200;not null" json:"name"`
	AppType    int               `gorm:"index" json:"appType"`
	Status     int               `gorm:"default:1" json:"status"`
	OrgID      string            `gorm:"size:36;index" json:"orgId"`
	AppKey     string            `gorm:"size:64;uniqueIndex" json:"appKey"`
	AppSecret  string            `gorm:"size:64" json:"appSecret"`
	Remark     string            `gorm:"size:500" json:"remark"`
	Additional datatypes.JSONMap `gorm:"type:json" json:"additional,omitempty"`
	CreatedAt  time.Time         `json:"createTs"`
	UpdatedAt  time.Time         `json:"updateTs"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a Application) CursorKey() (string, time.Time) {
	return a.ID, a.CreatedAt
}
