package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIPPrefersProxyHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = "10.0.0.9:54031"
		return c
	}

	c := newCtx()
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c = newCtx()
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", getClientIP(c))

	c = newCtx()
	assert.Equal(t, "10.0.0.9", getClientIP(c))
}
