package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	allowed map[string]bool
	err     error
	calls   atomic.Int32
}

func (s *stubChecker) IsAllowed(_ context.Context, origin string) (bool, error) {
	s.calls.Add(1)
	if s.err != nil {
		return false, s.err
	}
	return s.allowed[origin], nil
}

func newCORSServer(checker OriginChecker) *echo.Echo {
	e := echo.New()
	e.Use(CORS(checker, zerolog.Nop()))
	e.GET("/origins/all", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestCORS_AllowedPreflight(t *testing.T) {
	checker := &stubChecker{allowed: map[string]bool{"https://admin.example.com": true}}
	e := newCORSServer(checker)

	req := httptest.NewRequest(http.MethodOptions, "/origins/all", nil)
	req.Header.Set(echo.HeaderOrigin, "https://admin.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestCORS_AllowedSimpleRequest(t *testing.T) {
	checker := &stubChecker{allowed: map[string]bool{"https://site.example.com": true}}
	e := newCORSServer(checker)

	req := httptest.NewRequest(http.MethodGet, "/origins/all", nil)
	req.Header.Set(echo.HeaderOrigin, "https://site.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://site.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestCORS_DeniedOriginGetsNoAllowHeader(t *testing.T) {
	checker := &stubChecker{allowed: map[string]bool{}}
	e := newCORSServer(checker)

	for _, method := range []string{http.MethodGet, http.MethodOptions} {
		req := httptest.NewRequest(method, "/origins/all", nil)
		req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
		if method == http.MethodOptions {
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin), method)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials), method)
	}
}

func TestCORS_StoreFailureFailsClosed(t *testing.T) {
	checker := &stubChecker{err: errors.New("mongo down")}
	e := newCORSServer(checker)

	req := httptest.NewRequest(http.MethodGet, "/origins/all", nil)
	req.Header.Set(echo.HeaderOrigin, "https://admin.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.NotContains(t, rec.Body.String(), "ok")
}

func TestCORS_SameOriginSkipsLookup(t *testing.T) {
	checker := &stubChecker{err: errors.New("must not be called")}
	e := newCORSServer(checker)

	req := httptest.NewRequest(http.MethodGet, "/origins/all", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, checker.calls.Load())
}

func TestCORS_ListChangesTakeEffectImmediately(t *testing.T) {
	checker := &stubChecker{allowed: map[string]bool{}}
	e := newCORSServer(checker)

	send := func() string {
		req := httptest.NewRequest(http.MethodGet, "/origins/all", nil)
		req.Header.Set(echo.HeaderOrigin, "https://new.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Header().Get(echo.HeaderAccessControlAllowOrigin)
	}

	assert.Empty(t, send())
	checker.allowed["https://new.example.com"] = true
	assert.Equal(t, "https://new.example.com", send())
}
