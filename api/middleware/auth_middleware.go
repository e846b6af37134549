package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
)

// IdentityClaims 身份提供方签发的令牌声明；sub 为 uid
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// ParseIdentityToken 校验 HS256 签名与签发方（issuer 为空时不校验）
func ParseIdentityToken(tokenString, secret, issuer string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token without subject", domain.ErrUnauthorized)
	}
	return claims, nil
}

// AuthMiddleware 解析 Bearer 令牌并按邮箱解析角色；users 中无记录一律 401
func AuthMiddleware(auth catalogue_interface.AuthUsecase, secret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			return
		}

		claims, err := ParseIdentityToken(strings.TrimSpace(tokenString), secret, issuer)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}

		principal, err := auth.Resolve(c.Request.Context(), claims.Subject, claims.Email, claims.Name)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				log.Info().Str("uid", claims.Subject).Str("email", claims.Email).Msg("principal without user record")
				controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not registered")
				return
			}
			controller.HandleError(c, err)
			return
		}

		controller.SetPrincipal(c, principal)
		c.Next()
	}
}
