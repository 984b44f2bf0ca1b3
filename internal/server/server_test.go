package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/bootstrap"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/config"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	db, err := database.NewQuietGormDB(filepath.Join(dir, "viva.db"))
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			LogFilePath:        filepath.Join(dir, "viva.log"),
			CorsAllowedOrigins: "http://localhost:5173",
			TurnGuardTTL:       60,
		},
		Ai: config.AIConfig{LLMProvider: "ollama", LLMModel: "llama3", TimeoutSeconds: 1},
	}
	container := bootstrap.NewContainer(db, cfg)
	t.Cleanup(container.Close)
	return New(cfg, container)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, 404, body["code"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "go_goroutines")
}
