package db

import "time"

// 投票选项。
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// Vote 记录访客的一次评价。voter_id 上的唯一索引由存储层
// 保证一人一票,重复写入按正常分支处理而非错误。
type Vote struct {
	ID        uint   `gorm:"primaryKey"`
	VoterID   string `gorm:"size:64;uniqueIndex"`
	Choice    string `gorm:"size:16;not null"`
	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (Vote) TableName() string {
	return "votes"
}
