package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"x-real-ip", map[string]string{"X-Real-IP": "10.0.0.1"}, "10.0.0.1"},
		{"forwarded list", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"}, "203.0.113.5"},
		{"real ip wins", map[string]string{"X-Real-IP": "10.0.0.1", "X-Forwarded-For": "203.0.113.5"}, "10.0.0.1"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req := httptest.NewRequest("POST", "/api/contact", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c.Request = req

			if got := GetRealIP(c); got != tt.want {
				t.Errorf("GetRealIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
