package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ktadmin/internal/models"
)

func FirstSetup(db *gorm.DB) error {
	// -------------------------
	// 1) Ensure default org
	// -------------------------
	org := models.Organization{Name: "默认组织", OrgType: 1, Status: 1}
	if err := db.Where("name = ? AND parent_id = ''", org.Name).FirstOrCreate(&org).Error; err != nil {
		return err
	}

	// -------------------------
	// 2) Ensure roles
	// -------------------------
	adminRole := models.Role{OrgID: org.ID, Name: "管理员", Slug: "admin", IsSystem: true}
	opsRole := models.Role{OrgID: org.ID, Name: "运营", Slug: "ops"}
	readonlyRole := models.Role{OrgID: org.ID, Name: "只读", Slug: "readonly"}

	for _, r := range []*models.Role{&adminRole, &opsRole, &readonlyRole} {
		if err := db.Where("org_id = ? AND slug = ?", org.ID, r.Slug).FirstOrCreate(r).Error; err != nil {
			return err
		}
	}

	// -------------------------
	// 3) Ensure permissions
	// -------------------------
	perms := []models.Permission{
		{Key: "org:read", Description: "View organizations", Resource: "org", Action: "read"},
		{Key: "org:write", Description: "Manage organizations", Resource: "org", Action: "write"},
		{Key: "app:read", Description: "View applications", Resource: "app", Action: "read"},
		{Key: "app:write", Description: "Manage applications", Resource: "app", Action: "write"},
		{Key: "menu:read", Description: "View menus", Resource: "menu", Action: "read"},
		{Key: "menu:write", Description: "Manage menus", Resource: "menu", Action: "write"},
		{Key: "users:read", Description: "View users", Resource: "users", Action: "read"},
		{Key: "users:write", Description: "Manage users", Resource: "users", Action: "write"},
		{Key: "users:assign-role", Description: "Assign roles to users", Resource: "users", Action: "assign-role"},
		{Key: "roles:read", Description: "View roles", Resource: "roles", Action: "read"},
		{Key: "roles:write", Description: "Manage roles", Resource: "roles", Action: "write"},
		{Key: "audit:read", Description: "View audit logs", Resource: "audit", Action: "read"},
	}

	permIDs := map[string]uint64{}
	for _, p := range perms {
		tmp := p
		if err := db.Where("`key` = ?", tmp.Key).FirstOrCreate(&tmp).Error; err != nil {
			return err
		}
		permIDs[tmp.Key] = tmp.ID
	}

	// -------------------------
	// 4) role_permissions mapping
	// -------------------------
	// Use a direct INSERT IGNORE into the `role_permissions` join table to
	// avoid GORM's "model value required" error when operating on a table
	// without a corresponding model.
	ensureRolePerm := func(roleID string, permID uint64) error {
		res := db.Exec("INSERT IGNORE INTO role_permissions (role_id, permission_id) VALUES (?, ?)", roleID, permID)
		return res.Error
	}

	// Admin gets ALL permissions
	for _, pid := range permIDs {
		if err := ensureRolePerm(adminRole.ID, pid); err != nil {
			return err
		}
	}

	// Ops: manage apps/menus + read the rest
	opsKeys := []string{"org:read", "app:read", "app:write", "menu:read", "menu:write", "users:read", "roles:read", "audit:read"}
	for _, k := range opsKeys {
		if err := ensureRolePerm(opsRole.ID, permIDs[k]); err != nil {
			return err
		}
	}

	// ReadOnly: read-only permissions
	readonlyKeys := []string{"org:read", "app:read", "menu:read", "users:read", "roles:read", "audit:read"}
	for _, k := range readonlyKeys {
		if err := ensureRolePerm(readonlyRole.ID, permIDs[k]); err != nil {
			return err
		}
	}

	// -------------------------
	// 5) Ensure type dictionaries
	// -------------------------
	options := []models.TypeOption{
		{Group: "org-type", Code: 1, Value: "集团", Sort: 1},
		{Group: "org-type", Code: 2, Value: "公司", Sort: 2},
		{Group: "org-type", Code: 3, Value: "部门", Sort: 3},
		{Group: "app-type", Code: 1, Value: "Web应用", Sort: 1},
		{Group: "app-type", Code: 2, Value: "移动应用", Sort: 2},
		{Group: "app-type", Code: 3, Value: "小程序", Sort: 3},
		{Group: "app-type", Code: 4, Value: "开放接口", Sort: 4},
		{Group: "menu-type", Code: 1, Value: "目录", Sort: 1},
		{Group: "menu-type", Code: 2, Value: "菜单", Sort: 2},
		{Group: "menu-type", Code: 3, Value: "按钮", Sort: 3},
		{Group: "user-status", Code: 0, Value: "禁用", Sort: 1},
		{Group: "user-status", Code: 1, Value: "正常", Sort: 2},
	}
	for _, o := range options {
		tmp := o
		if err := db.Where("`group` = ? AND code = ?", tmp.Group, tmp.Code).FirstOrCreate(&tmp).Error; err != nil {
			return err
		}
	}

	// -------------------------
	// 6) Ensure console menus
	// -------------------------
	menus := []models.Menu{
		{Name: "工作台", Path: "/dashboard", Icon: "dashboard", Component: "dashboard", MenuType: 2, Sort: 1},
		{Name: "组织管理", Path: "/org", Icon: "organization", Component: "org-list", MenuType: 2, Sort: 2},
		{Name: "应用管理", Path: "/app", Icon: "application", Component: "app-list", MenuType: 2, Sort: 3},
		{Name: "菜单管理", Path: "/menu", Icon: "menu", Component: "menu-list", MenuType: 2, Sort: 4},
		{Name: "用户管理", Path: "/user", Icon: "user", Component: "user-list", MenuType: 2, Sort: 5},
		{Name: "权限管理", Path: "/role", Icon: "safe", Component: "role-list", MenuType: 2, Sort: 6},
		{Name: "操作日志", Path: "/audit", Icon: "history", Component: "audit-list", MenuType: 2, Sort: 7},
	}
	for _, m := range menus {
		tmp := m
		if err := db.Where("path = ?", tmp.Path).FirstOrCreate(&tmp).Error; err != nil {
			return err
		}
	}

	// -------------------------
	// 7) Ensure admin user
	// -------------------------
	const adminEmail = "admin@example.com"
	const adminPass = "admin123" // change after first login

	passHash, _ := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)

	adminUser := models.User{
		OrgID:        org.ID,
		Email:        adminEmail,
		Name:         "Admin User",
		Status:       models.UserActive,
		AuthProvider: "local",
		PasswordHash: string(passHash),
	}
	if err := db.Where("org_id = ? AND email = ?", org.ID, adminEmail).FirstOrCreate(&adminUser).Error; err != nil {
		return err
	}

	// -------------------------
	// 8) user_roles mapping (admin user -> admin role)
	// Use direct INSERT IGNORE to avoid GORM ordering/ID assumptions when the
	// join table uses a composite primary key (user_id, role_id, org_id).
	// -------------------------
	if res := db.Exec("INSERT IGNORE INTO user_roles (user_id, role_id, org_id) VALUES (?, ?, ?)", adminUser.ID, adminRole.ID, org.ID); res.Error != nil {
		return res.Error
	}

	log.Printf("✅ Seed OK | admin=%s pass=%s | org=%s | roles=[admin,ops,readonly] | perms=%d",
		adminEmail, adminPass, org.Name, len(perms),
	)
	return nil
}
