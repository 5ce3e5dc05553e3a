package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
)

// MenuList returns every menu row ordered for tree assembly on the caller's
// side, parents before children.
func MenuList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var menus []models.Menu
		if err := db.Order("parent_id, sort, created_at").Find(&menus).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		response.OK(c, menus)
	}
}

func AddMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name       string                 `json:"name" binding:"required"`
			Path       string                 `json:"path"`
			Icon       string                 `json:"icon"`
			Component  string                 `json:"component"`
			MenuType   int                    `json:"menuType"`
			ParentID   string                 `json:"parentId"`
			Sort       int                    `json:"sort"`
			Hidden     bool                   `json:"hidden"`
			Additional map[string]interface{} `json:"additional"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		menu := models.Menu{
			Name:       strings.TrimSpace(in.Name),
			Path:       in.Path,
			Icon:       in.Icon,
			Component:  in.Component,
			MenuType:   in.MenuType,
			ParentID:   in.ParentID,
			Sort:       in.Sort,
			Hidden:     in.Hidden,
			Additional: in.Additional,
		}
		if err := db.Create(&menu).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "menu.add", "menu", menu.ID, map[string]interface{}{"name": menu.Name})
		response.OK(c, true)
	}
}

func UpdateMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ID         string                 `json:"id" binding:"required"`
			Name       string                 `json:"name"`
			Path       *string                `json:"path"`
			Icon       *string                `json:"icon"`
			Component  *string                `json:"component"`
			MenuType   *int                   `json:"menuType"`
			ParentID   *string                `json:"parentId"`
			Sort       *int                   `json:"sort"`
			Hidden     *bool                  `json:"hidden"`
			Additional map[string]interface{} `json:"additional"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var menu models.Menu
		if err := db.First(&menu, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "menu not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		updates := map[string]interface{}{}
		if in.Name != "" {
			updates["name"] = strings.TrimSpace(in.Name)
		}
		if in.Path != nil {
			updates["path"] = *in.Path
		}
		if in.Icon != nil {
			updates["icon"] = *in.Icon
		}
		if in.Component != nil {
			updates["component"] = *in.Component
		}
		if in.MenuType != nil {
			updates["menu_type"] = *in.MenuType
		}
		if in.ParentID != nil {
			updates["parent_id"] = *in.ParentID
		}
		if in.Sort != nil {
			updates["sort"] = *in.Sort
		}
		if in.Hidden != nil {
			updates["hidden"] = *in.Hidden
		}
		if in.Additional != nil {
			updates["additional"] = datatypes.JSONMap(in.Additional)
		}

		if len(updates) > 0 {
			if err := db.Model(&menu).Updates(updates).Error; err != nil {
				response.Fail(c, response.CodeServerError, err.Error())
				return
			}
		}

		recordAudit(c, db, "menu.update", "menu", menu.ID, nil)
		response.OK(c, true)
	}
}

func DeleteMenus(db *gorm.DB) gin.HandlerFunc {
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

		if err := db.Where("id IN ?", in.IDs).Delete(&models.Menu{}).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "menu.delete", "menu", strings.Join(in.IDs, ","), nil)
		response.OK(c, true)
	}
}
