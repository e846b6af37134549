package middleware

import (
	"fmt"
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

// 受保护的资源与动作
const (
	ResourceCatalogue = "catalogue"
	ResourceUsers     = "users"

	ActionRead  = "read"
	ActionWrite = "write"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// 角色继承：admin > editor > viewer
var (
	rolePolicies = [][]string{
		{catalogue_models.UserRoleViewer, ResourceCatalogue, ActionRead},
		{catalogue_models.UserRoleEditor, ResourceCatalogue, ActionWrite},
		{catalogue_models.UserRoleEditor, ResourceUsers, ActionRead},
		{catalogue_models.UserRoleAdmin, ResourceUsers, ActionWrite},
	}
	roleInheritance = [][]string{
		{catalogue_models.UserRoleEditor, catalogue_models.UserRoleViewer},
		{catalogue_models.UserRoleAdmin, catalogue_models.UserRoleEditor},
	}
)

// NewRoleEnforcer 内置策略的 casbin 执行器
func NewRoleEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to add policy %v: %w", p, err)
		}
	}
	for _, g := range roleInheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, fmt.Errorf("failed to add role inheritance %v: %w", g, err)
		}
	}
	return enforcer, nil
}

// RequirePermission 当前主体角色不足时返回 403
func RequirePermission(enforcer *casbin.SyncedEnforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := controller.CurrentPrincipal(c)
		if !ok {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in")
			return
		}

		allowed, err := enforcer.Enforce(principal.Role, resource, action)
		if err != nil {
			controller.ErrorResponse(c, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
			return
		}
		if !allowed {
			controller.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN",
				fmt.Sprintf("role %q cannot %s %s", principal.Role, action, resource))
			return
		}

		c.Next()
	}
}
