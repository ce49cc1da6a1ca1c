package db

import "time"

// 事件类型:页面浏览与三类外链点击。
const (
	EventPageView      = "page_view"
	EventTelegramClick = "tg_click"
	EventGitHubClick   = "gh_click"
	EventResumeClick   = "resume_click"
)

// Event 记录一次离散行为,只追加不修改。Meta 为可选附加信息,
// 外链点击时存放目标地址。
type Event struct {
	ID        uint   `gorm:"primaryKey"`
	VisitorID string `gorm:"size:64;index"`
	SessionID string `gorm:"size:64;index"`
	Page      string `gorm:"size:64;index"`
	EventType string `gorm:"size:32;index"`
	Meta      string `gorm:"size:255"`
	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (Event) TableName() string {
	return "events"
}
