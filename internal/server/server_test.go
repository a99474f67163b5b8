package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/internal/handler"
	"github.com/qads-development/QADS-Backend/internal/session"
	"github.com/qads-development/QADS-Backend/internal/store"
	"github.com/qads-development/QADS-Backend/pkg/config"
	"github.com/qads-development/QADS-Backend/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.Open(&config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "qads.db"),
		LogLevel: logger.Silent,
	}, zap.NewNop())
	require.NoError(t, err)
	s, err := store.New(db, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	reg := session.NewRegistry([]byte("server-test-key"))
	h := handler.New(s, reg, handler.WithBcryptCost(bcrypt.MinCost))
	return New(h, reg, zap.NewNop())
}

func doJSON(t *testing.T, e *echo.Echo, method, target, token string, body interface{}) (*httptest.ResponseRecorder, handler.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp handler.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestRoutes_EndToEnd(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodPost, "/onboarding", "", map[string]interface{}{
		"business_name":      "Acme",
		"email":              "owner@acme.test",
		"services":           []string{},
		"platforms":          []string{},
		"generated_username": "acme",
		"generated_password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doJSON(t, e, http.MethodPost, "/login", "", map[string]string{"username": "acme", "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	token, _ := data["session_id"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Acme", data["client_name"])

	rec, resp = doJSON(t, e, http.MethodPost, "/api/employees", token, map[string]interface{}{
		"name": "Alice", "title": "Engineer", "salary": 1200.25, "status": "active",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	employee := resp.Data.(map[string]interface{})
	id := employee["id"].(string)

	rec, _ = doJSON(t, e, http.MethodPut, "/api/employees/"+id+"/payment", token, map[string]bool{"paid": true})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(t, e, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_employees"])
	assert.Equal(t, 1200.25, stats["monthly_payroll"])

	rec, _ = doJSON(t, e, http.MethodDelete, "/api/employees/"+id, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, resp = doJSON(t, e, http.MethodDelete, "/api/employees/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee not found", resp.Message)
}

func TestRoutes_RequireSession(t *testing.T) {
	e := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/employees"},
		{http.MethodPost, "/api/employees"},
		{http.MethodDelete, "/api/employees/x"},
		{http.MethodPut, "/api/employees/x/payment"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPut, "/api/tasks/x"},
		{http.MethodDelete, "/api/tasks/x"},
		{http.MethodGet, "/api/events"},
		{http.MethodPost, "/api/events"},
		{http.MethodDelete, "/api/events/x"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec, resp := doJSON(t, e, r.method, r.path, "forged-token", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Invalid session", resp.Message)
		})
	}
}

func TestRoutes_NotFoundAndHealth(t *testing.T) {
	e := newTestServer(t)

	rec, resp := doJSON(t, e, http.MethodGet, "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route not found", resp.Message)

	rec, _ = doJSON(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = doJSON(t, e, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "qads_info")
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	e := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, e, config.ServerConfig{Host: "127.0.0.1", Port: "0", ShutdownTimeout: 5 * time.Second}, zap.NewNop())
	}()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + e.ListenerAddr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
