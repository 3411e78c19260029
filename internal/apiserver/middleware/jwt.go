package middleware

import (
	"strings"

	"github.com/chloroplast/expense-server/internal/auth/jwt"
	"github.com/chloroplast/expense-server/internal/common/dto"
	"github.com/chloroplast/expense-server/internal/common/errorx"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware creates a middleware that validates JWT tokens.
// A missing or malformed Authorization header and a failed validation are
// reported as distinct failures.
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(errorx.ErrTokenMissing.HTTPStatus, dto.Fail(errorx.ErrTokenMissing.Message))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(errorx.ErrTokenMissing.HTTPStatus, dto.Fail(errorx.ErrTokenMissing.Message))
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errorx.ErrTokenInvalid.HTTPStatus, dto.Fail(errorx.ErrTokenInvalid.Message))
			return
		}

		// Add the claims to the context
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRole creates a middleware that allows only the given role claims
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims")
		if !exists {
			c.AbortWithStatusJSON(errorx.ErrTokenMissing.HTTPStatus, dto.Fail(errorx.ErrTokenMissing.Message))
			return
		}

		jwtClaims, ok := claims.(*jwt.Claims)
		if !ok {
			c.AbortWithStatusJSON(errorx.ErrTokenInvalid.HTTPStatus, dto.Fail(errorx.ErrTokenInvalid.Message))
			return
		}

		for _, role := range roles {
			if jwtClaims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errorx.ErrForbidden.HTTPStatus, dto.Fail(errorx.ErrForbidden.Message))
	}
}
