package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/gomega"

	"landing_cms_backend/internal/services"
)

func guardedEngine(password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/guarded", AdminPasswordMiddleware(services.NewAuthService(password)), func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return engine
}

func TestAdminPasswordMiddleware(t *testing.T) {
	g := NewWithT(t)
	engine := guardedEngine("s3cret")

	cases := []struct {
		name   string
		header *string
		code   int
		body   string
	}{
		{"correct", ptr("s3cret"), http.StatusOK, "OK"},
		{"wrong", ptr("nope"), http.StatusUnauthorized, "UA"},
		{"bearer prefix is not stripped", ptr("Bearer s3cret"), http.StatusUnauthorized, "UA"},
		{"missing", nil, http.StatusUnauthorized, "UA"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		if tc.header != nil {
			req.Header.Set("Authorization", *tc.header)
		}
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		g.Expect(rec.Code).To(Equal(tc.code), tc.name)
		g.Expect(rec.Body.String()).To(Equal(tc.body), tc.name)
	}
}

func TestMissingHeaderDoesNotMatchEmptyPassword(t *testing.T) {
	g := NewWithT(t)
	engine := guardedEngine("")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	g.Expect(rec.Code).To(Equal(http.StatusUnauthorized))
}

func TestRequestID(t *testing.T) {
	g := NewWithT(t)
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rec.Body.String()).To(Equal(rec.Header().Get(RequestIDHeader)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	g.Expect(rec.Header().Get(RequestIDHeader)).To(Equal("upstream-id"))
}

func ptr(s string) *string { return &s }
