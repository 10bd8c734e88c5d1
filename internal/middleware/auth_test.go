package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAPIKeyAuth(t *testing.T) {
	setupRouter := func(apiKey string) *gin.Engine {
		r := gin.New()
		r.Use(APIKeyAuth(apiKey))
		r.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
		return r
	}

	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{
			name:       "valid key passes",
			configured: "secret-key",
			header:     "secret-key",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong key rejected",
			configured: "secret-key",
			header:     "wrong-key",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header rejected",
			configured: "secret-key",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty configured key disables the check",
			configured: "",
			header:     "",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.configured)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
