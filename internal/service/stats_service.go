package service

import (
	"fmt"

	"github.com/mssas/portfolio/internal/db"
	"gorm.io/gorm"
)

// SiteStats 汇总分析页展示的全部读侧指标,每次渲染即时重算。
type SiteStats struct {
	UniqueVisitors int64
	Sessions       int64
	PageViews      map[string]int64
	TelegramClicks int64
	GitHubClicks   int64
	ResumeClicks   int64
	TelegramCTR    float64
	GitHubCTR      float64
	ResumeCTR      float64
	Durations      map[string]int64
}

// StatsService 是只读的聚合组件,从原始事件与时长表计算派生指标。
type StatsService struct {
	db *gorm.DB
}

// NewStatsService 创建 StatsService。
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// Overview 汇总访客数、会话数、分页浏览量、点击量、CTR 与分页停留时长。
// 不做缓存,各查询之间允许瞬时不一致。
func (s *StatsService) Overview() (SiteStats, error) {
	stats := SiteStats{
		PageViews: make(map[string]int64),
		Durations: make(map[string]int64),
	}

	if err := s.db.Model(&db.Session{}).Distinct("visitor_id").Count(&stats.UniqueVisitors).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&db.Session{}).Count(&stats.Sessions).Error; err != nil {
		return stats, err
	}

	var views []struct {
		Page  string
		Total int64
	}
	if err := s.db.Model(&db.Event{}).
		Select("page, COUNT(*) AS total").
		Where("event_type = ?", db.EventPageView).
		Group("page").
		Scan(&views).Error; err != nil {
		return stats, err
	}
	for _, row := range views {
		stats.PageViews[row.Page] = row.Total
	}

	var clicks []struct {
		EventType string
		Total     int64
	}
	if err := s.db.Model(&db.Event{}).
		Select("event_type, COUNT(*) AS total").
		Where("event_type <> ?", db.EventPageView).
		Group("event_type").
		Scan(&clicks).Error; err != nil {
		return stats, err
	}
	for _, row := range clicks {
		switch row.EventType {
		case db.EventTelegramClick:
			stats.TelegramClicks = row.Total
		case db.EventGitHubClick:
			stats.GitHubClicks = row.Total
		case db.EventResumeClick:
			stats.ResumeClicks = row.Total
		}
	}

	var durations []struct {
		Page  string
		Total int64
	}
	if err := s.db.Model(&db.PageDuration{}).
		Select("page, COALESCE(SUM(seconds), 0) AS total").
		Group("page").
		Scan(&durations).Error; err != nil {
		return stats, err
	}
	for _, row := range durations {
		stats.Durations[row.Page] = row.Total
	}

	homeViews := stats.PageViews[PageHome]
	stats.TelegramCTR = ctr(stats.TelegramClicks, homeViews)
	stats.GitHubCTR = ctr(stats.GitHubClicks, homeViews)
	stats.ResumeCTR = ctr(stats.ResumeClicks, homeViews)

	return stats, nil
}

// ctr 计算点击率百分比,分母为 0 时定义为 0 而不是错误。
func ctr(clicks, views int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(clicks) / float64(views) * 100
}

// FormatSeconds 将累计秒数格式化为 mm:ss。
func FormatSeconds(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
