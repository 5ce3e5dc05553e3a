package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktadmin/internal/config"
	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
)

// UploadPublic accepts one multipart file on the public attachment endpoint,
// stores it under the upload dir and records an Attachment row. The stored
// name is randomized; the original name survives on the record only.
func UploadPublic(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			response.Fail(c, response.CodeInvalidParams, "file is required")
			return
		}

		if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
			response.Fail(c, response.CodeServerError, "upload dir unavailable")
			return
		}

		stored := uuid.NewString() + filepath.Ext(file.Filename)
		dst := filepath.Join(cfg.UploadDir, stored)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		att := models.Attachment{
			Name:        filepath.Base(file.Filename),
			Path:        dst,
			URL:         cfg.PublicURL + "/uploads/" + stored,
			Size:        file.Size,
			ContentType: file.Header.Get("Content-Type"),
		}
		if err := db.Create(&att).Error; err != nil {
			// file is already on disk; drop it so retries don't leak
			if rmErr := os.Remove(dst); rmErr != nil {
				log.Printf("⚠️ failed to remove orphaned upload %s: %v", dst, rmErr)
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, response.Envelope{Code: response.CodeOK, Msg: "ok", Data: gin.H{
			"id":  att.ID,
			"url": att.URL,
		}})
	}
}
