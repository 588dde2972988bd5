package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idn-area/internal/logger"
	"idn-area/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-1", w.Header().Get(RequestIDHeader))
	assert.Empty(t, GetRequestID(nil))
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(logger.New(&buf, "info", "text")))
	r.GET("/provinces", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/provinces", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, "request_id=abc")
	assert.Contains(t, line, "path=/provinces")
	assert.Contains(t, line, "status=418")
}

func TestCORSRestrictsOrigins(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://example.org", " "}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSAllowsAllWhenUnset(t *testing.T) {
	r := gin.New()
	r.Use(CORS(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightAdvertisesReadMethods(t *testing.T) {
	r := gin.New()
	r.Use(CORS(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	methods := w.Header().Get("Access-Control-Allow-Methods")
	assert.Contains(t, methods, http.MethodGet)
	assert.Contains(t, methods, http.MethodHead)
	assert.NotContains(t, methods, http.MethodPost)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/provinces/:code", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/provinces/32", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/provinces/11", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/provinces/:code", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404")))
}
