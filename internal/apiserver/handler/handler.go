package handler

import (
	"github.com/chloroplast/expense-server/internal/auth/jwt"
	"github.com/gin-gonic/gin"
)

// claimsFrom extracts the verified JWT claims the auth middleware stored
func claimsFrom(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
