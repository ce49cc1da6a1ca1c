package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mssas/portfolio/internal/config"
	"github.com/mssas/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Prepare(gdb); err != nil {
		t.Fatalf("failed to prepare test database: %v", err)
	}
	db.DB = gdb

	cfg := config.AppConfig{
		CookieSecret: "test-secret",
		TemplateGlob: "../../web/template/*.html",
		StaticDir:    "../../web/static",
	}

	return SetupRouter(cfg), func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSetupRouterPing(t *testing.T) {
	r, cleanup := setupRouterTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestSetupRouterHomeTracksVisit(t *testing.T) {
	r, cleanup := setupRouterTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Портфолио") {
		t.Fatal("expected the rendered home page to contain the seeded title")
	}

	visitorCookie := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "pf_visitor" {
			visitorCookie = true
		}
	}
	if !visitorCookie {
		t.Fatal("expected the visitor cookie to be set on first visit")
	}

	var events int64
	db.DB.Model(&db.Event{}).Where("event_type = ?", db.EventPageView).Count(&events)
	if events != 1 {
		t.Fatalf("expected one page_view event, got %d", events)
	}

	var sessions int64
	db.DB.Model(&db.Session{}).Count(&sessions)
	if sessions != 1 {
		t.Fatalf("expected one session row, got %d", sessions)
	}
}
