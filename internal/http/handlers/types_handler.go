package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
)

// TypeOptions serves one code→label dictionary group, e.g. "org-type".
func TypeOptions(db *gorm.DB, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var options []models.TypeOption
		if err := db.Where("`group` = ?", group).Order("sort, code").Find(&options).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		response.OK(c, options)
	}
}
