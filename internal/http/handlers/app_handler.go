package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
	"ktadmin/internal/pagination"
)

// AppPageList returns a cursor window of applications, newest first.
// Filters: name (substring), appType (exact).
func AppPageList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := pagination.FromRequest(c, 50)

		base := db.Model(&models.Application{})
		if name := strings.TrimSpace(c.Query("name")); name != "" {
			base = base.Where("name LIKE ?", "%"+name+"%")
		}
		if appType := c.Query("appType"); appType != "" {
			base = base.Where("app_type = ?", appType)
		}

		win, err := pagination.Paginate[models.Application](base, q)
		if err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}
		response.OK(c, win)
	}
}

func AppDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			response.Fail(c, response.CodeInvalidParams, "id is required")
			return
		}
		var app models.Application
		if err := db.First(&app, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "application not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		response.OK(c, app)
	}
}

func AddApp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name       string                 `json:"name" binding:"required"`
			AppType    int                    `json:"appType"`
			Status     *int                   `json:"status"`
			OrgID      string                 `json:"orgId"`
			Remark     string                 `json:"remark"`
			Additional map[string]interface{} `json:"additional"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		key, err := randomHex(16)
		if err != nil {
			response.Fail(c, response.CodeServerError, "failed to generate app key")
			return
		}
		secret, err := randomHex(32)
		if err != nil {
			response.Fail(c, response.CodeServerError, "failed to generate app secret")
			return
		}

		app := models.Application{
			Name:       strings.TrimSpace(in.Name),
			AppType:    in.AppType,
			Status:     1,
			OrgID:      in.OrgID,
			AppKey:     key,
			AppSecret:  secret,
			Remark:     in.Remark,
			Additional: in.Additional,
		}
		if in.Status != nil {
			app.Status = *in.Status
		}

		if err := db.Create(&app).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "app.add", "application", app.ID, map[string]interface{}{"name": app.Name})
		response.OK(c, true)
	}
}

func UpdateApp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ID         string                 `json:"id" binding:"required"`
			Name       string                 `json:"name"`
			AppType    *int                   `json:"appType"`
			Status     *int                   `json:"status"`
			OrgID      *string                `json:"orgId"`
			Remark     *string                `json:"remark"`
			Additional map[string]interface{} `json:"additional"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var app models.Application
		if err := db.First(&app, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "application not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		updates := map[string]interface{}{}
		if in.Name != "" {
			updates["name"] = strings.TrimSpace(in.Name)
		}
		if in.AppType != nil {
			updates["app_type"] = *in.AppType
		}
		if in.Status != nil {
			updates["status"] = *in.Status
		}
		if in.OrgID != nil {
			updates["org_id"] = *in.OrgID
		}
		if in.Remark != nil {
			updates["remark"] = *in.Remark
		}
		if in.Additional != nil {
			updates["additional"] = datatypes.JSONMap(in.Additional)
		}

		if len(updates) > 0 {
			if err := db.Model(&app).Updates(updates).Error; err != nil {
				response.Fail(c, response.CodeServerError, err.Error())
				return
			}
		}

		recordAudit(c, db, "app.update", "application", app.ID, nil)
		response.OK(c, true)
	}
}

func DeleteApps(db *gorm.DB) gin.HandlerFunc {
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

		if err := db.Where("id IN ?", in.IDs).Delete(&models.Application{}).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "app.delete", "application", strings.Join(in.IDs, ","), nil)
		response.OK(c, true)
	}
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
