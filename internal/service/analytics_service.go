package service

import (
	"errors"
	"time"

	"github.com/mssas/portfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnalyticsService 负责会话、事件与停留时长的写入逻辑。
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService 创建 AnalyticsService。
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb}
}

// EnsureSession 以 session_id 为键幂等地登记会话,重复调用无额外副作用。
func (s *AnalyticsService) EnsureSession(visitorID, sessionID string, now time.Time) error {
	if visitorID == "" || sessionID == "" {
		return errors.New("invalid visitor or session id")
	}

	session := db.Session{SessionID: sessionID, VisitorID: visitorID, LastSeen: now}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoNothing: true,
	}).Create(&session).Error
}

// TouchSession 无条件刷新会话的 last_seen。
func (s *AnalyticsService) TouchSession(sessionID string, now time.Time) error {
	return s.db.Model(&db.Session{}).
		Where("session_id = ?", sessionID).
		Update("last_seen", now).Error
}

// LogEvent 追加一条事件记录。
func (s *AnalyticsService) LogEvent(visitorID, sessionID, page, eventType, meta string) error {
	event := db.Event{
		VisitorID: visitorID,
		SessionID: sessionID,
		Page:      page,
		EventType: eventType,
		Meta:      meta,
	}
	return s.db.Create(&event).Error
}

// AddTime 为 (session_id, page) 累加停留秒数,行不存在时创建。
// 通过 upsert 自增一次落库,并发标签页之间不会互相覆盖。
func (s *AnalyticsService) AddTime(sessionID, page string, seconds int64) error {
	if seconds < 0 {
		seconds = 0
	}

	row := db.PageDuration{SessionID: sessionID, Page: page, Seconds: seconds}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"seconds": gorm.Expr("seconds + ?", seconds),
		}),
	}).Create(&row).Error
}

// PageTimer 记录当前页面与进入时间,随浏览器会话在渲染之间传递。
type PageTimer struct {
	Page      string
	EnteredAt int64 // unix 秒
}

// Transition 处理一次页面渲染:页面切换时先结算上一页的停留时长,
// 再为新页面记录一条 page_view;同页重渲染不产生任何写入。
// 经过时间为负(时钟回拨)时按 0 结算。写入失败不回滚计时状态,
// 由调用方按尽力而为的遥测处理。
func (s *AnalyticsService) Transition(visitorID, sessionID string, timer PageTimer, page string, now time.Time) (PageTimer, error) {
	if timer.Page == page {
		return timer, nil
	}

	var firstErr error

	if timer.Page != "" {
		elapsed := now.Unix() - timer.EnteredAt
		if elapsed < 0 {
			elapsed = 0
		}
		if err := s.AddTime(sessionID, timer.Page, elapsed); err != nil {
			firstErr = err
		}
	}

	if err := s.LogEvent(visitorID, sessionID, page, db.EventPageView, ""); err != nil && firstErr == nil {
		firstErr = err
	}

	return PageTimer{Page: page, EnteredAt: now.Unix()}, firstErr
}
