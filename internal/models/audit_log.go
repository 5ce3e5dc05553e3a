package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	OrgID         string         `gorm:"size:36;index" json:"orgId"`
	UserID        string         `gorm:"size:36;index" json:"userId"` // empty for system actions
	Action        string         `gorm:"size:200;not null" json:"action"` // e.g. "org.add", "user.delete"
	ResourceType  string         `gorm:"size:100" json:"resourceType"`
	ResourceID    string         `gorm:"size:36;index" json:"resourceId"`
	Metadata      datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	IP            string         `gorm:"size:64" json:"ip"`
	InitiatorName string         `gorm:"size:255" json:"initiatorName"`
	UserAgent     string         `gorm:"size:255" json:"-"`
	CreatedAt     time.Time      `json:"createTs"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func (l AuditLog) CursorKey() (string, time.Time) {
	return l.ID, l.CreatedAt
}
