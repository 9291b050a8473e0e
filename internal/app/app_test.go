package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/docrun/internal/docgen"
	"github.com/vk/docrun/internal/ready"
)

func TestNew_PublishesReadinessAndDefaultEngine(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	a := New(buf, Config{LogLevel: "debug", LogFormat: "text"}, nil)

	require.True(t, a.signal.Ready(), "readiness must be published once services are constructed")
	require.IsType(t, &docgen.Generator{}, a.Engine())
	require.Contains(t, buf.String(), "runtime services ready")
}

func TestNew_KeepsInjectedEngine(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	a := New(&bytes.Buffer{}, Config{LogFormat: "text"}, rec)
	require.Same(t, rec, a.Engine().(*docgen.Recorder))
}

func TestHealthHandler_ReportsGateState(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	a := &App{
		logger: newLogger("info", "text", buf),
		errW:   buf,
		signal: &ready.Signal{},
	}

	rr := httptest.NewRecorder()
	a.healthHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code, "not ready until the signal is set")

	a.signal.Set()

	rr = httptest.NewRecorder()
	a.healthHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestNewLogger_Formats(t *testing.T) {
	t.Parallel()

	jsonBuf := &bytes.Buffer{}
	newLogger("info", "json", jsonBuf).Info("hello")
	require.Contains(t, jsonBuf.String(), `"msg":"hello"`)

	textBuf := &bytes.Buffer{}
	newLogger("info", "text", textBuf).Info("hello")
	require.Contains(t, textBuf.String(), "msg=hello")

	// Debug level is filtered out at the default level.
	quiet := &bytes.Buffer{}
	newLogger("info", "text", quiet).Debug("invisible")
	require.Empty(t, quiet.String())
}
