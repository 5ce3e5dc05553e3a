package handlers

import (
	"github.com/gin-gonic/gin"

	"ktadmin/internal/http/response"
	"ktadmin/internal/nav"
)

// Sidebar serves the sidebar projections of the route table.
func Sidebar() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{
			"sidebar": nav.SidebarItems(nav.Routes),
		}
		if dev, ok := nav.DeveloperRoute(nav.Routes); ok {
			data["developer"] = nav.DeveloperSidebarItems(dev)
		}
		response.OK(c, data)
	}
}
