package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attachment struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Path        string    `gorm:"size:500" json:"-"`
	URL         string    `gorm:"size:500" json:"url"`
	Size        int64     `json:"size"`
	ContentType string    `gorm:"size:100" json:"contentType"`
	CreatedAt   time.Time `json:"createTs"`
	UpdatedAt   time.Time `json:"updateTs"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
