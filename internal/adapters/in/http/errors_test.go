package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeErrorFor(t *testing.T, s *Server, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil), rec)
	c.Set(traceIDKey, "trace-1")

	require.NoError(t, s.writeError(c, err))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestWriteError_ConflictHidesCause(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewServer(Handlers{}, nil, zap.New(core))
	cause := errors.New(`pq: duplicate key value violates unique constraint "profiles_user_id_kind_key"`)

	rec, body := writeErrorFor(t, s, errs.NewConflictErrorWithCause(errs.CodeProfileAlreadyExists, "user role changed concurrently", cause))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(errs.CodeProfileAlreadyExists), body.Code)
	assert.Equal(t, "user role changed concurrently", body.Message)
	assert.Equal(t, "trace-1", body.TraceID)
	assert.NotContains(t, rec.Body.String(), "profiles_user_id_kind_key")
	assert.NotContains(t, rec.Body.String(), "cause")

	require.Equal(t, 1, logs.FilterMessage("conflict").Len())
	assert.Contains(t, logs.All()[0].ContextMap()["error"], "profiles_user_id_kind_key")
}

func TestWriteError_ConflictWithoutCause(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewServer(Handlers{}, nil, zap.New(core))

	rec, body := writeErrorFor(t, s, errs.NewConflictError(errs.CodeProfileAlreadyExists, "vendor profile already exists"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "vendor profile already exists", body.Message)
	assert.Zero(t, logs.Len())
}

func TestWriteError_UnexpectedErrorIsMasked(t *testing.T) {
	s := NewServer(Handlers{}, nil, zap.NewNop())

	rec, body := writeErrorFor(t, s, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "an unexpected error occurred", body.Message)
}
