package service

import (
	"testing"
	"time"

	"github.com/mssas/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Session{}, &db.Event{}, &db.PageDuration{}, &db.Vote{}, &db.Page{}, &db.ProfileContact{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestEnsureSessionIdempotent(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := svc.EnsureSession("visitor-1", "session-1", base); err != nil {
		t.Fatalf("first ensure failed: %v", err)
	}
	if err := svc.EnsureSession("visitor-2", "session-1", base.Add(time.Minute)); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}

	var count int64
	db.DB.Model(&db.Session{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 session row, got %d", count)
	}

	var session db.Session
	if err := db.DB.First(&session, "session_id = ?", "session-1").Error; err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if session.VisitorID != "visitor-1" {
		t.Fatalf("expected first visitor to win the upsert, got %q", session.VisitorID)
	}
}

func TestTouchSessionUpdatesLastSeen(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := svc.EnsureSession("visitor-1", "session-1", base); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if err := svc.TouchSession("session-1", base.Add(5*time.Minute)); err != nil {
		t.Fatalf("touch failed: %v", err)
	}

	var session db.Session
	if err := db.DB.First(&session, "session_id = ?", "session-1").Error; err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if !session.LastSeen.Equal(base.Add(5 * time.Minute)) {
		t.Fatalf("unexpected last_seen: %v", session.LastSeen)
	}
}

func TestAddTimeAccumulates(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)

	for _, elapsed := range []int64{10, 20, 12} {
		if err := svc.AddTime("session-1", PageHome, elapsed); err != nil {
			t.Fatalf("add time %d failed: %v", elapsed, err)
		}
	}

	var row db.PageDuration
	if err := db.DB.First(&row, "session_id = ? AND page = ?", "session-1", PageHome).Error; err != nil {
		t.Fatalf("failed to load duration: %v", err)
	}
	if row.Seconds != 42 {
		t.Fatalf("expected 42 accumulated seconds, got %d", row.Seconds)
	}

	var count int64
	db.DB.Model(&db.PageDuration{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single duration row, got %d", count)
	}
}

func TestTransitionEmitsOneViewPerChange(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	timer := PageTimer{}
	var err error

	// Первый заход на Главную: одно событие, длительностей ещё нет.
	timer, err = svc.Transition("visitor-1", "session-1", timer, PageHome, base)
	if err != nil {
		t.Fatalf("first transition failed: %v", err)
	}

	var durationCount int64
	db.DB.Model(&db.PageDuration{}).Count(&durationCount)
	if durationCount != 0 {
		t.Fatalf("expected no duration rows after first view, got %d", durationCount)
	}

	// Перерисовка той же страницы не пишет ничего.
	timer, err = svc.Transition("visitor-1", "session-1", timer, PageHome, base.Add(10*time.Second))
	if err != nil {
		t.Fatalf("same-page transition failed: %v", err)
	}
	if timer.EnteredAt != base.Unix() {
		t.Fatalf("timer restarted on same-page render: %d", timer.EnteredAt)
	}

	// Переход на Дашборды через 42 секунды закрывает таймер Главной.
	timer, err = svc.Transition("visitor-1", "session-1", timer, PageDashboards, base.Add(42*time.Second))
	if err != nil {
		t.Fatalf("dashboards transition failed: %v", err)
	}

	var duration db.PageDuration
	if err := db.DB.First(&duration, "session_id = ? AND page = ?", "session-1", PageHome).Error; err != nil {
		t.Fatalf("failed to load home duration: %v", err)
	}
	if duration.Seconds != 42 {
		t.Fatalf("expected 42 seconds on home, got %d", duration.Seconds)
	}

	// Возврат на Главную.
	if _, err = svc.Transition("visitor-1", "session-1", timer, PageHome, base.Add(60*time.Second)); err != nil {
		t.Fatalf("return transition failed: %v", err)
	}

	var events []db.Event
	if err := db.DB.Order("id ASC").Find(&events).Error; err != nil {
		t.Fatalf("failed to load events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 page_view events, got %d", len(events))
	}
	expected := []string{PageHome, PageDashboards, PageHome}
	for i, event := range events {
		if event.EventType != db.EventPageView {
			t.Fatalf("event %d has type %q", i, event.EventType)
		}
		if event.Page != expected[i] {
			t.Fatalf("event %d: expected page %q, got %q", i, expected[i], event.Page)
		}
	}
}

func TestTransitionClampsClockSkew(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Отметка входа в будущем: время не должно уйти в минус.
	timer := PageTimer{Page: PageHome, EnteredAt: now.Add(time.Hour).Unix()}
	if _, err := svc.Transition("visitor-1", "session-1", timer, PageDashboards, now); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	var duration db.PageDuration
	if err := db.DB.First(&duration, "session_id = ? AND page = ?", "session-1", PageHome).Error; err != nil {
		t.Fatalf("failed to load duration: %v", err)
	}
	if duration.Seconds != 0 {
		t.Fatalf("expected clamped 0 seconds, got %d", duration.Seconds)
	}
}
