package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func do(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	log, _ := test.NewNullLogger()
	s := New(pingerFunc(func(context.Context) error { return errors.New("down") }), log)

	rec := do(t, s, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, s, http.MethodPost, "/healthz")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReadyz(t *testing.T) {
	log, hook := test.NewNullLogger()
	var dbErr error
	s := New(pingerFunc(func(context.Context) error { return dbErr }), log)

	rec := do(t, s, http.MethodGet, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, hook.AllEntries())

	dbErr = errors.New("connection refused")
	rec = do(t, s, http.MethodGet, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	if assert.Len(t, hook.AllEntries(), 1) {
		assert.Equal(t, dbErr, hook.LastEntry().Data["error"])
	}
}

func TestUnknownPath(t *testing.T) {
	log, _ := test.NewNullLogger()
	s := New(pingerFunc(func(context.Context) error { return nil }), log)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/faceit/webhook").Code)
}
