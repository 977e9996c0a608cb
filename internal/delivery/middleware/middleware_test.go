package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses client id", incoming: "abc-123", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seen)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_LogsPrincipalAndStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/employer/jobs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	principal := &entity.Principal{UserID: uuid.New(), Email: "grace@acme.io", Role: entity.RoleEmployer}
	deliverycontext.SetPrincipal(c, principal)

	err := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return errors.WithStack(domainerrors.ErrNotFound)
	})(c)
	require.Error(t, err)

	line := buf.String()
	assert.Contains(t, line, `"status":404`)
	assert.Contains(t, line, `"level":"WARN"`)
	assert.Contains(t, line, principal.UserID.String())
	assert.Contains(t, line, `"role":"EMPLOYER"`)
}

func TestLoggerMiddleware_SilentOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/jobs/all", nil), httptest.NewRecorder())

	err := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusOf(errors.WithStack(domainerrors.ErrAlreadyApplied)))
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("boom")))
}
