package db

import "time"

// Session 表示一次浏览会话,以 session_id 为键做幂等 upsert,
// last_seen 在每次渲染时刷新。
type Session struct {
	SessionID string `gorm:"size:64;primaryKey"`
	VisitorID string `gorm:"size:64;index"`
	LastSeen  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (Session) TableName() string {
	return "sessions"
}
