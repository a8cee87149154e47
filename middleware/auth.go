package middleware

import (
	"net/http"
	"strings"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/utils"

	"github.com/gin-gonic/gin"
)

// TenantIDKey is the context key under which the authenticated tenant id is stored.
const TenantIDKey = "tenantID"

// StaffIDKey is the context key under which the authenticated staff id is stored.
const StaffIDKey = "staffID"

// TenantAuthMiddleware verifies the dashboard session token and pins the
// request to the token's tenant. Every downstream handler reads the tenant
// from the context rather than from client input, so one tenant can never
// query another tenant's calendar.
func TenantAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.VerifyStaffToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(TenantIDKey, claims.TenantID)
		c.Set(StaffIDKey, claims.StaffID)
		c.Next()
	}
}

// TenantID returns the authenticated tenant for the request.
func TenantID(c *gin.Context) string {
	return c.GetString(TenantIDKey)
}
