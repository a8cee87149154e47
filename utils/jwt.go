package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/config"
)

// secretKey reads the signing secret from the loaded configuration. Resolved
// per call rather than at init, since config loads after package init. The
// fallback keeps local development working without a .env file.
func secretKey() []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	return []byte("beauty-center-dev-secret")
}

// StaffClaims are the verified claims of a dashboard session token.
type StaffClaims struct {
	TenantID string
	StaffID  string
}

// GenerateStaffToken creates a signed JWT for a staff dashboard session,
// scoped to the staff member's tenant. Login and token issuance live in the
// identity service; this is exported for that service and for provisioning
// scripts that mint tokens against the shared secret.
func GenerateStaffToken(tenantID, staffID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    staffID,
		"tenant": tenantID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// VerifyStaffToken validates a session token and extracts its claims.
func VerifyStaffToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	tenantID, _ := claims["tenant"].(string)
	staffID, _ := claims["sub"].(string)
	if tenantID == "" {
		return nil, errors.New("token missing tenant claim")
	}
	return &StaffClaims{TenantID: tenantID, StaffID: staffID}, nil
}
