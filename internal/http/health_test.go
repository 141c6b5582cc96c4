package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/bookstore/internal/database"
)

func TestHealthStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	controller := NewHealthController(db, "1.2.3")

	router := gin.New()
	router.GET("/health", controller.Status)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("expected healthy status, got %s", response.Status)
	}
	if response.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", response.Version)
	}
	if response.Checks["database"] != "ok" {
		t.Errorf("expected database check ok, got %s", response.Checks["database"])
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := NewRouter(RouterConfig{})

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}
