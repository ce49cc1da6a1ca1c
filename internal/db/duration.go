package db

import "time"

// PageDuration 按 (session_id, page) 累计访客在页面上的停留秒数,
// 唯一索引保证每个组合只有一行。
type PageDuration struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:64;uniqueIndex:idx_durations_session_page"`
	Page      string `gorm:"size:64;uniqueIndex:idx_durations_session_page"`
	Seconds   int64  `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (PageDuration) TableName() string {
	return "durations"
}
