package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artivisual-app/internal/domain/access"
	"artivisual-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()

	r := gin.New()
	r.Use(Metrics(reg))
	r.GET("/artworks/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/artworks/1", "/artworks/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP artivisual_http_requests_total HTTP requests by method, route and status.
# TYPE artivisual_http_requests_total counter
artivisual_http_requests_total{method="GET",route="/artworks/:id",status="200"} 2
artivisual_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "artivisual_http_requests_total"))

	n, err := testutil.GatherAndCount(reg, "artivisual_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSanitizeStripsNestedMarkup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		got = string(raw)
		c.Status(http.StatusOK)
	})

	body := `{"title":"<script>alert(1)</script>Dusk","tags":["<i>oil</i>"],"meta":{"note":"<b>hi</b>"},"price":10}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"Dusk","tags":["oil"],"meta":{"note":"hi"},"price":10}`, got)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"query":"Fire & Ice","name":"<em>Nature's</em> Symphony"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"query":"Fire & Ice","name":"Nature's Symphony"}`, got, "plain text is not entity-escaped")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"title":`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(role users.Role) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("role", string(role)) })
		r.POST("/upload", RequireCapability(access.CapUpload), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		r.GET("/admin", RequireCapability(access.CapModerate), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	tests := []struct {
		role   users.Role
		upload int
		admin  int
	}{
		{users.RoleBuyer, http.StatusForbidden, http.StatusForbidden},
		{users.RoleSeller, http.StatusNoContent, http.StatusForbidden},
		{users.RoleAdmin, http.StatusForbidden, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			r := newEngine(tt.role)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
			assert.Equal(t, tt.upload, w.Code)

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tt.admin, w.Code)
		})
	}
}
