// Package nav is the single source of truth for the console's route table.
// Pages are referenced by registry key, never constructed here; the sidebar
// and the developer area are projections over the same table.
package nav

import (
	"errors"
	"fmt"
	"sync"
)

type Route struct {
	Path          string  `json:"path"`
	Component     string  `json:"component"` // page registry key
	Title         string  `json:"title,omitempty"`
	Icon          string  `json:"icon,omitempty"`
	ShowInSidebar bool    `json:"-"`
	Children      []Route `json:"children,omitempty"`
}

type SidebarItem struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Routes is the console's declarative route table. Detail routes stay out of
// the sidebar but remain reachable by direct navigation.
var Routes = []Route{
	{Path: "/dashboard", Component: "dashboard", Title: "工作台", Icon: "dashboard", ShowInSidebar: true},
	{Path: "/org", Component: "org-list", Title: "组织管理", Icon: "organization", ShowInSidebar: true},
	{Path: "/org/:id", Component: "org-detail", ShowInSidebar: false},
	{Path: "/app", Component: "app-list", Title: "应用管理", Icon: "application", ShowInSidebar: true},
	{Path: "/app/:id", Component: "app-detail", ShowInSidebar: false},
	{Path: "/menu", Component: "menu-list", Title: "菜单管理", Icon: "menu", ShowInSidebar: true},
	{Path: "/user", Component: "user-list", Title: "用户管理", Icon: "user", ShowInSidebar: true},
	{Path: "/role", Component: "role-list", Title: "权限管理", Icon: "safe", ShowInSidebar: true},
	{Path: "/audit", Component: "audit-list", Title: "操作日志", Icon: "history", ShowInSidebar: true},
	{
		Path: "/developer", Component: "developer", Title: "开发者", Icon: "code", ShowInSidebar: true,
		Children: []Route{
			{Path: "app-key", Component: "developer-app-key", Title: "应用密钥", Icon: "key", ShowInSidebar: true},
			{Path: "docs", Component: "developer-docs", Title: "接口文档", Icon: "document", ShowInSidebar: true},
			{Path: "sandbox", Component: "developer-sandbox", ShowInSidebar: false},
		},
	},
}

// SidebarItems keeps only routes that are flagged for the sidebar AND carry
// both a title and an icon, preserving table order.
func SidebarItems(routes []Route) []SidebarItem {
	items := make([]SidebarItem, 0, len(routes))
	for _, r := range routes {
		if !r.ShowInSidebar || r.Title == "" || r.Icon == "" {
			continue
		}
		items = append(items, SidebarItem{Path: r.Path, Title: r.Title, Icon: r.Icon})
	}
	return items
}

// DeveloperSidebarItems projects a parent's children, prefixing each child
// path with the parent path.
func DeveloperSidebarItems(parent Route) []SidebarItem {
	items := make([]SidebarItem, 0, len(parent.Children))
	for _, child := range parent.Children {
		if !child.ShowInSidebar || child.Title == "" || child.Icon == "" {
			continue
		}
		items = append(items, SidebarItem{
			Path:  parent.Path + "/" + child.Path,
			Title: child.Title,
			Icon:  child.Icon,
		})
	}
	return items
}

// DeveloperRoute finds the developer subtree in a route table.
func DeveloperRoute(routes []Route) (Route, bool) {
	for _, r := range routes {
		if len(r.Children) > 0 {
			return r, true
		}
	}
	return Route{}, false
}

var ErrUnknownPage = errors.New("unknown page key")

// Factory builds a page for the hosting framework. What a "page" is stays
// the host's business; the table only hands out capabilities by key.
type Factory func() interface{}

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(key string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = f
}

func (r *Registry) Resolve(key string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, key)
	}
	return f, nil
}
