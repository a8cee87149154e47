package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/utils"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", TenantAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenant": TenantID(c), "staff": c.GetString(StaffIDKey)})
	})
	return r
}

func TestTenantAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateStaffToken("tenant-a", "staff-1", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"tenant":"tenant-a"`, `"staff":"staff-1"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s: %s", want, body)
		}
	}
}

func TestTenantAuthMiddleware_RejectsMissingOrBadToken(t *testing.T) {
	cases := map[string]string{
		"no header":    "",
		"wrong scheme": "Basic abc",
		"garbage":      "Bearer not-a-jwt",
	}
	for name, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		newAuthRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, w.Code)
		}
	}
}

func TestTenantAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	token, err := utils.GenerateStaffToken("tenant-a", "staff-1", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
