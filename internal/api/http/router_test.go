package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

func TestRouter_Images(t *testing.T) {
	t.Parallel()

	const key = "profileImages/0b6f1b1e-6c5f-4f6e-9a8e-1f2d3c4b5a69.jpg"

	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(s *mocks.Storage)
		wantStatus int
		wantBody   string
		wantType   string
	}{
		{
			name:   "streams stored image",
			method: http.MethodGet,
			path:   "/images/" + key,
			setup: func(s *mocks.Storage) {
				s.On("Exists", mock.Anything, key).Return(true, nil).Once()
				s.On("Download", mock.Anything, key).Return(io.NopCloser(strings.NewReader("jpeg-bytes")), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "jpeg-bytes",
			wantType:   "image/jpeg",
		},
		{
			name:   "head skips download",
			method: http.MethodHead,
			path:   "/images/" + key,
			setup: func(s *mocks.Storage) {
				s.On("Exists", mock.Anything, key).Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantType:   "image/jpeg",
		},
		{
			name:   "unknown extension",
			method: http.MethodGet,
			path:   "/images/plants/blob",
			setup: func(s *mocks.Storage) {
				s.On("Exists", mock.Anything, "plants/blob").Return(true, nil).Once()
				s.On("Download", mock.Anything, "plants/blob").Return(io.NopCloser(strings.NewReader("x")), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "x",
			wantType:   fallbackContentType,
		},
		{
			name:   "missing image",
			method: http.MethodGet,
			path:   "/images/" + key,
			setup: func(s *mocks.Storage) {
				s.On("Exists", mock.Anything, key).Return(false, nil).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "storage failure",
			method: http.MethodGet,
			path:   "/images/" + key,
			setup: func(s *mocks.Storage) {
				s.On("Exists", mock.Anything, key).Return(false, errors.New("minio down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "empty key",
			method:     http.MethodGet,
			path:       "/images/",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "writes are not routed",
			method:     http.MethodPost,
			path:       "/images/" + key,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := mocks.NewStorage(t)
			if tt.setup != nil {
				tt.setup(storage)
			}

			router := NewRouter(storage, nil, testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	checks := map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
	}
	router := NewRouter(mocks.NewStorage(t), checks, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Checks["database"])

	checks["database"] = func(context.Context) error { return errors.New("connection refused") }
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["database"])
}
