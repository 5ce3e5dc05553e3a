package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
)

func RoleList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []models.Role
		if err := db.Preload("Permissions").Order("created_at").Find(&roles).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		response.OK(c, roles)
	}
}

func AddRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			OrgID       string `json:"orgId" binding:"required"`
			Name        string `json:"name" binding:"required"`
			Slug        string `json:"slug" binding:"required"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		role := models.Role{
			OrgID:       in.OrgID,
			Name:        strings.TrimSpace(in.Name),
			Slug:        strings.TrimSpace(in.Slug),
			Description: in.Description,
		}
		if err := db.Create(&role).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "role.add", "role", role.ID, map[string]interface{}{"slug": role.Slug})
		response.OK(c, true)
	}
}

func UpdateRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ID          string  `json:"id" binding:"required"`
			Name        string  `json:"name"`
			Description *string `json:"description"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var role models.Role
		if err := db.First(&role, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "role not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		if role.IsSystem {
			response.Fail(c, response.CodeForbidden, "system roles cannot be modified")
			return
		}

		updates := map[string]interface{}{}
		if in.Name != "" {
			updates["name"] = strings.TrimSpace(in.Name)
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if len(updates) > 0 {
			if err := db.Model(&role).Updates(updates).Error; err != nil {
				response.Fail(c, response.CodeServerError, err.Error())
				return
			}
		}

		recordAudit(c, db, "role.update", "role", role.ID, nil)
		response.OK(c, true)
	}
}

func DeleteRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			IDs []string `json:"ids"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}
		if len(in.IDs) == 0 {
			response.OK(c, true)
			return
		}

		var systemCount int64
		if err := db.Model(&models.Role{}).
			Where("id IN ? AND is_system = ?", in.IDs, true).
			Count(&systemCount).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		if systemCount > 0 {
			response.Fail(c, response.CodeForbidden, "system roles cannot be deleted")
			return
		}

		if err := db.Where("id IN ?", in.IDs).Delete(&models.Role{}).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "role.delete", "role", strings.Join(in.IDs, ","), nil)
		response.OK(c, true)
	}
}

// AssignPermissions replaces a role's permission set.
func AssignPermissions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			RoleID        string   `json:"roleId" binding:"required"`
			PermissionIDs []uint64 `json:"permissionIds"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var role models.Role
		if err := db.First(&role, "id = ?", in.RoleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "role not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", role.ID).Error; err != nil {
				return err
			}
			for _, pid := range in.PermissionIDs {
				if res := tx.Exec("INSERT IGNORE INTO role_permissions (role_id, permission_id) VALUES (?, ?)",
					role.ID, pid); res.Error != nil {
					return res.Error
				}
			}
			return nil
		})
		if err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "role.assign-permissions", "role", role.ID, map[string]interface{}{"permissionIds": in.PermissionIDs})
		response.OK(c, true)
	}
}
