package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ktadmin/internal/auth"
	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
	"ktadmin/internal/pagination"
)

// AuditPageList returns the caller's organization audit trail as a cursor
// window, newest first.
func AuditPageList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsI, ok := c.Get("claims")
		if !ok {
			response.Fail(c, response.CodeUnauthorized, "unauthorized")
			return
		}
		cl := claimsI.(*auth.Claims)

		q := pagination.FromRequest(c, 20)

		base := db.Model(&models.AuditLog{}).Where("org_id = ?", cl.OrgID)
		if search := strings.TrimSpace(c.Query("q")); search != "" {
			like := "%" + search + "%"
			base = base.Where("(initiator_name LIKE ? OR action LIKE ? OR resource_type LIKE ?)", like, like, like)
		}
		if action := strings.TrimSpace(c.Query("action")); action != "" {
			base = base.Where("action = ?", action)
		}

		win, err := pagination.Paginate[models.AuditLog](base, q)
		if err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}
		response.OK(c, win)
	}
}
