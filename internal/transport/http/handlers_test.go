package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sudokucore/api/internal/config"
	"github.com/sudokucore/api/internal/ratelimit"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{Mode: "dev"}
	limiter := ratelimit.New(time.Second, 1000)
	return NewEngine(cfg, testLogger(), limiter)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestEngine()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSolveEndpointSuccess(t *testing.T) {
	r := newTestEngine()

	body := []solveRequestItem{
		{Grid: "530070000600195000098000060800060003400803001700020006060000280000419005000080079", Solver: "dlx"},
	}
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out []solveResponseItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Nil(t, out[0].Error)
	require.Equal(t, "534678912672195348198342567859761423426853791713924856961537284287419635345286179", out[0].Solution)
	require.Equal(t, "dlx", out[0].Solver)
}

func TestSolveEndpointErrorItem(t *testing.T) {
	r := newTestEngine()

	body := []solveRequestItem{
		{Grid: "0000000000", Solver: "dlx"},
	}
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out []solveResponseItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Error)
	require.Equal(t, "LengthMismatch", out[0].Error.Kind)
	require.Equal(t, 10, out[0].Error.Got)
}

func TestSolveEndpointMalformedBody(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveEndpointBatch(t *testing.T) {
	r := newTestEngine()

	body := []solveRequestItem{
		{Grid: "530070000600195000098000060800060003400803001700020006060000280000419005000080079", Solver: "cpdfs"},
		{Grid: "0000000000", Solver: "dlx"},
	}
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out []solveResponseItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	require.Nil(t, out[0].Error)
	require.NotNil(t, out[1].Error)
}
