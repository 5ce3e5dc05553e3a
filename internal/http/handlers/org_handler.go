package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
	"ktadmin/internal/pagination"
)

// OrgPageList returns a cursor window of organizations, newest first.
// Filters: name (substring), orgType (exact).
func OrgPageList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := pagination.FromRequest(c, 10)

		base := db.Model(&models.Organization{})
		if name := strings.TrimSpace(c.Query("name")); name != "" {
			base = base.Where("name LIKE ?", "%"+name+"%")
		}
		if orgType := c.Query("orgType"); orgType != "" {
			base = base.Where("org_type = ?", orgType)
		}

		win, err := pagination.Paginate[models.Organization](base, q)
		if err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}
		response.OK(c, win)
	}
}

func OrgDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			response.Fail(c, response.CodeInvalidParams, "id is required")
			return
		}
		var org models.Organization
		if err := db.First(&org, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "organization not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		response.OK(c, org)
	}
}

func AddOrg(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name       string                 `json:"name" binding:"required"`
			OrgType    int                    `json:"orgType"`
			Status     *int                   `json:"status"`
			ParentID   string                 `json:"parentId"`
			Sort       int                    `json:"sort"`
			Additional map[string]interface{} `json:"additional"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		org := models.Organization{
			Name:       strings.TrimSpace(in.Name),
			OrgType:    in.OrgType,
			Status:     1,
			ParentID:   in.ParentID,
			Sort:       in.Sort,
			Additional: in.Additional,
		}
		if in.Status != nil {
			org.Status = *in.Status
		}

		if err := db.Create(&org).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "org.add", "organization", org.ID, map[string]interface{}{"name": org.Name})
		response.OK(c, true)
	}
}

func UpdateOrg(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ID         string                 `json:"id" binding:"required"`
			Name       string                 `json:"name"`
			OrgType    *int                   `json:"orgType"`
			Status     *int                   `json:"status"`
			ParentID   *string                `json:"parentId"`
			Sort       *int                   `json:"sort"`
			Additional map[string]interface{} `json:"additional"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var org models.Organization
		if err := db.First(&org, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.CodeNotFound, "organization not found")
				return
			}
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		updates := map[string]interface{}{}
		if in.Name != "" {
			updates["name"] = strings.TrimSpace(in.Name)
		}
		if in.OrgType != nil {
			updates["org_type"] = *in.OrgType
		}
		if in.Status != nil {
			updates["status"] = *in.Status
		}
		if in.ParentID != nil {
			updates["parent_id"] = *in.ParentID
		}
		if in.Sort != nil {
			updates["sort"] = *in.Sort
		}
		if in.Additional != nil {
			updates["additional"] = datatypes.JSONMap(in.Additional)
		}

		if len(updates) > 0 {
			if err := db.Model(&org).Updates(updates).Error; err != nil {
				response.Fail(c, response.CodeServerError, err.Error())
				return
			}
		}

		recordAudit(c, db, "org.update", "organization", org.ID, nil)
		response.OK(c, true)
	}
}

// DeleteOrgs removes the given organizations in one statement; either all
// ids go or none do.
func DeleteOrgs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			IDs []string `json:"ids"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}
		// An empty id set is accepted and deletes nothing; the decision
		// belongs here, not in the client.
		if len(in.IDs) == 0 {
			response.OK(c, true)
			return
		}

		if err := db.Where("id IN ?", in.IDs).Delete(&models.Organization{}).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}

		recordAudit(c, db, "org.delete", "organization", strings.Join(in.IDs, ","), nil)
		response.OK(c, true)
	}
}

// OrgTree returns the full hierarchy as a flat, parent-annotated list.
// Linking children to parents is the caller's job.
func OrgTree(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orgs []models.Organization
		if err := db.Order("parent_id, sort, created_at").Find(&orgs).Error; err != nil {
			response.Fail(c, response.CodeServerError, err.Error())
			return
		}
		response.OK(c, orgs)
	}
}
