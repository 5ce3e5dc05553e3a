package handlers

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ktadmin/internal/auth"
	"ktadmin/internal/models"
)

// recordAudit writes one audit row for a successful mutation. Best effort:
// a failed insert is logged, never surfaced to the caller.
func recordAudit(c *gin.Context, db *gorm.DB, action, resourceType, resourceID string, meta map[string]interface{}) {
	entry := models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IP:           c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}
	if claimsI, ok := c.Get("claims"); ok {
		cl := claimsI.(*auth.Claims)
		entry.UserID = cl.UserID
		entry.OrgID = cl.OrgID
		entry.InitiatorName = cl.Email
	}
	if meta != nil {
		if raw, err := json.Marshal(meta); err == nil {
			entry.Metadata = datatypes.JSON(raw)
		}
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("⚠️ audit write failed for %s: %v", action, err)
	}
}
