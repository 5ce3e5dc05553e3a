package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ktadmin/internal/auth"
	"ktadmin/internal/config"
	"ktadmin/internal/http/handlers"
	"ktadmin/internal/http/response"
	"ktadmin/internal/rbac"
)

func NewRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// Uploaded attachments are public by design
	r.Static("/uploads", cfg.UploadDir)

	// favicon fix
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Public routes
	r.POST("/api/auth/login", handlers.LoginHandler(db, cfg.JWTSecret))
	r.POST("/api/c/attachment/file/upload-public", handlers.UploadPublic(db, cfg))

	// Protected API routes
	chk := rbac.Checker{DB: db}
	authMW := auth.JWT(db, cfg.JWTSecret)

	sys := r.Group("/api/sys", authMW)
	{
		// Current user info & navigation
		sys.GET("/me", handlers.Me(db))
		sys.GET("/nav/sidebar", handlers.Sidebar())

		// Organizations
		org := sys.Group("/org")
		org.GET("/page-list", require(chk, "org:read"), handlers.OrgPageList(db))
		org.GET("/details", require(chk, "org:read"), handlers.OrgDetails(db))
		org.GET("/tree", require(chk, "org:read"), handlers.OrgTree(db))
		org.POST("/add", require(chk, "org:write"), handlers.AddOrg(db))
		org.POST("/update", require(chk, "org:write"), handlers.UpdateOrg(db))
		org.POST("/delete", require(chk, "org:write"), handlers.DeleteOrgs(db))

		// Applications
		app := sys.Group("/app")
		app.GET("/page-list", require(chk, "app:read"), handlers.AppPageList(db))
		app.GET("/details", require(chk, "app:read"), handlers.AppDetails(db))
		app.POST("/add", require(chk, "app:write"), handlers.AddApp(db))
		app.POST("/update", require(chk, "app:write"), handlers.UpdateApp(db))
		app.POST("/delete", require(chk, "app:write"), handlers.DeleteApps(db))

		// Menus
		menu := sys.Group("/menu")
		menu.GET("/list", require(chk, "menu:read"), handlers.MenuList(db))
		menu.POST("/add", require(chk, "menu:write"), handlers.AddMenu(db))
		menu.POST("/update", require(chk, "menu:write"), handlers.UpdateMenu(db))
		menu.POST("/delete", require(chk, "menu:write"), handlers.DeleteMenus(db))

		// Users
		user := sys.Group("/user")
		user.GET("/page-list", require(chk, "users:read"), handlers.UserPageList(db))
		user.POST("/add", require(chk, "users:write"), handlers.AddUser(db))
		user.POST("/update", require(chk, "users:write"), handlers.UpdateUser(db))
		user.POST("/delete", require(chk, "users:write"), handlers.DeleteUsers(db))
		user.POST("/assign-roles", require(chk, "users:assign-role"), handlers.AssignRoles(db))

		// Roles & permissions
		role := sys.Group("/role")
		role.GET("/list", require(chk, "roles:read"), handlers.RoleList(db))
		role.POST("/add", require(chk, "roles:write"), handlers.AddRole(db))
		role.POST("/update", require(chk, "roles:write"), handlers.UpdateRole(db))
		role.POST("/delete", require(chk, "roles:write"), handlers.DeleteRoles(db))
		role.POST("/assign-permissions", require(chk, "roles:write"), handlers.AssignPermissions(db))

		// Type dictionaries (readable by any signed-in user)
		types := sys.Group("/types")
		types.GET("/org-type", handlers.TypeOptions(db, "org-type"))
		types.GET("/app-type", handlers.TypeOptions(db, "app-type"))
		types.GET("/menu-type", handlers.TypeOptions(db, "menu-type"))
		types.GET("/user-status", handlers.TypeOptions(db, "user-status"))

		// Audit trail
		sys.GET("/audit/page-list", require(chk, "audit:read"), handlers.AuditPageList(db))
	}

	return r
}

func require(chk rbac.Checker, permKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsI, ok := c.Get("claims")
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized")
			return
		}
		cl := claimsI.(*auth.Claims)

		allowed, err := chk.Can(c.Request.Context(), cl.UserID, cl.OrgID, permKey)
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, response.CodeServerError, err.Error())
			return
		}
		if !allowed {
			response.Abort(c, http.StatusForbidden, response.CodeForbidden, "permission denied: "+permKey)
			return
		}
		c.Next()
	}
}
