package middlewares

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Generates Request ID", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hospitals", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		var seen string
		var fromClient bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
			fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		req := httptest.NewRequest(http.MethodGet, "/hospitals", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-abc", seen)
		assert.True(t, fromClient)
		assert.Equal(t, "client-abc", rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Rejects Declared Oversized Body", func(t *testing.T) {
		called := false
		handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/appointments/add", strings.NewReader(strings.Repeat("a", 2<<20)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("Caps Undeclared Body", func(t *testing.T) {
		var readErr error
		handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, readErr = io.ReadAll(r.Body)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/appointments/add", strings.NewReader(strings.Repeat("a", 2<<20)))
		req.ContentLength = -1
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Error(t, readErr)
	})

	t.Run("Small Body Passes", func(t *testing.T) {
		var body []byte
		handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ = io.ReadAll(r.Body)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`)))

		assert.Equal(t, `{"a":1}`, string(body))
	})
}

func TestLogging(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.RequestIDMiddleware(m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add-campaign", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
