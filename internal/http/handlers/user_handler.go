package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
	"ktadmin/internal/pagination"
)

// UserPageList returns a cursor window of users, newest first.
// Filters: name/email substring, status.
func UserPageList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := pagination.FromRequest(c, 10)

		base := db.Model(&models.User{})
		if name := strings.TrimSpace(c.Query("name")); name != "" {
			like := "%" + name + "%"
			base = base.Where("(name LIKE ? OR email LIKE ?)", like, like)
		}
		if status := c.Query("status"); status != "" {
			base = base.Where("status = ?", status)
		}
		if orgID := c.Query("orgId"); orgID != "" {
			base = base.Where("org_id = ?", orgID)
		}

		win, err := pagination.Paginate[models.User](base, q)
		if err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}
		response.OK(c, win)
	}
}

// AddUser inserts a new user
func AddUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			OrgID    string `json:"orgId" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Name     string `json:"name" binding:"required"`
			Password string `json:"password" binding:"required"`
			Status   *int   `json:"status"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		// Basic normalization
		in.Email = strings.TrimSpace(strings.ToLower(in.Email))
		in.Name = strings.TrimSpace(in.Name)

		if len(in.Password) < 8 {
			response.Fail(c, response.CodeInvalidParams, "password must be at least 8 characters")
			return
		}

		// Prevent duplicate email per org (unique key recommended at DB level too)
		var existing int64
		if err := db.Model(&models.User{}).
			Where("org_id = ? AND email = ?", in.OrgID, in.Email).
			Count(&existing).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		if existing > 0 {
			response.Fail(c, response.CodeInvalidParams, "email already exists in this organization")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Fail(c, response.CodeServerError, "failed to hash password")
			return
		}

		user := models.User{
			OrgID:        in.OrgID,
			Email:        in.Email,
			Name:         in.Name,
			Status:       models.UserActive,
			AuthProvider: "local",
			PasswordHash: string(hash),
		}
		if in.Status != nil {
			user.Status = models.UserStatus(*in.Status)
		}

		if err := db.Create(&user).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "user.add", "user", user.ID, map[string]interface{}{"email": user.Email})
		response.OK(c, true)
	}
}

func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ID       string  `json:"id" binding:"required"`
			Name     string  `json:"name"`
			Status   *int    `json:"status"`
			Password *string `json:"password"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "user not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		updates := map[string]interface{}{}
		if in.Name != "" {
			updates["name"] = strings.TrimSpace(in.Name)
		}
		if in.Status != nil {
			updates["status"] = *in.Status
		}
		if in.Password != nil {
			if len(*in.Password) < 8 {
				response.Fail(c, response.CodeInvalidParams, "password must be at least 8 characters")
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				response.Fail(c, response.CodeServerError, "failed to hash password")
				return
			}
			updates["password_hash"] = string(hash)
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				response.Fail(c, response.CodeServerError, err.Error())
				return
			}
		}

		recordAudit(c, db, "user.update", "user", user.ID, nil)
		response.OK(c, true)
	}
}

func DeleteUsers(db *gorm.DB) gin.HandlerFunc {
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

		if err := db.Where("id IN ?", in.IDs).Delete(&models.User{}).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "user.delete", "user", strings.Join(in.IDs, ","), nil)
		response.OK(c, true)
	}
}

// AssignRoles replaces a user's role set within their organization.
func AssignRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			UserID  string   `json:"userId" binding:"required"`
			RoleIDs []string `json:"roleIds"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", in.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "user not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
				return err
			}
			for _, roleID := range in.RoleIDs {
				// INSERT IGNORE keeps duplicate pairs from erroring out
				if res := tx.Exec("INSERT IGNORE INTO user_roles (user_id, role_id, org_id) VALUES (?, ?, ?)",
					user.ID, roleID, user.OrgID); res.Error != nil {
					return res.Error
				}
			}
			return nil
		})
		if err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "user.assign-roles", "user", user.ID, map[string]interface{}{"roleIds": in.RoleIDs})
		response.OK(c, true)
	}
}
