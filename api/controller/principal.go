package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

// PrincipalKey 认证中间件写入 gin 上下文的键
const PrincipalKey = "principal"

func SetPrincipal(ctx *gin.Context, p *catalogue_models.Principal) {
	ctx.Set(PrincipalKey, p)
}

func CurrentPrincipal(ctx *gin.Context) (*catalogue_models.Principal, bool) {
	v, ok := ctx.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*catalogue_models.Principal)
	return p, ok && p != nil
}
