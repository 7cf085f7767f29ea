package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"text/html; charset=UTF-8"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte("<h1>Venues</h1>"))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "text/html; charset=UTF-8", gotHdr.Get("Content-Type"))
	assert.Equal(t, "<h1>Venues</h1>", string(body))

	_, _, _, ok = decodePayload([]byte{0, 1})
	assert.False(t, ok)
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0})
	assert.False(t, ok, "header length beyond payload")
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("fyyur:page", httptest.NewRequest(http.MethodGet, "/venues", nil))
	b := cacheKey("fyyur:page", httptest.NewRequest(http.MethodGet, "/venues?x=1", nil))
	c := cacheKey("fyyur:page", httptest.NewRequest(http.MethodGet, "/venues", nil))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.Regexp(t, `^fyyur:page:[0-9a-f]{40}$`, a)
}

func TestRedisCacheWithoutClient(t *testing.T) {
	log, _ := test.NewNullLogger()
	rc := NewRedisCache(config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}, nil, log)
	assert.NoError(t, rc.Purge(context.Background()))

	e := echo.New()
	e.GET("/venues", func(c echo.Context) error { return c.String(http.StatusOK, "venues") }, rc.Middleware())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues", nil))
	assert.Equal(t, "venues", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))

	var nilCache *RedisCache
	assert.NoError(t, nilCache.Purge(context.Background()))
}

func TestCaptureWriterDropsOversizedBodies(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}
	_, _ = cw.Write([]byte("abc"))
	assert.False(t, cw.truncated)
	_, _ = cw.Write([]byte("def"))
	assert.True(t, cw.truncated)
	assert.Equal(t, "abcdef", rec.Body.String(), "client still gets the full body")
}
