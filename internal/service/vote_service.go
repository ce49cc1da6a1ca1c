package service

import (
	"errors"

	"github.com/mssas/portfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownChoice 表示投票选项不在 like/dislike 之内。
var ErrUnknownChoice = errors.New("unknown vote choice")

// VoteResult 表示一次投票请求的结果。
type VoteResult int

const (
	// VoteAccepted 投票已记录。
	VoteAccepted VoteResult = iota
	// VoteAlreadyCast 该访客此前已投过票,本次未写入。
	VoteAlreadyCast
)

// VoteService 负责一人一票的评价记录与统计。
type VoteService struct {
	db *gorm.DB
}

// NewVoteService 创建 VoteService。
func NewVoteService(gdb *gorm.DB) *VoteService {
	return &VoteService{db: gdb}
}

// Cast 尝试为访客记录一票。voter_id 唯一索引冲突说明已投过,
// 按预期分支返回 VoteAlreadyCast 而非错误。
func (s *VoteService) Cast(voterID, choice string) (VoteResult, error) {
	if voterID == "" {
		return 0, errors.New("invalid voter id")
	}
	if choice != db.VoteLike && choice != db.VoteDislike {
		return 0, ErrUnknownChoice
	}

	vote := db.Vote{VoterID: voterID, Choice: choice}
	insert := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "voter_id"}},
		DoNothing: true,
	}).Create(&vote)
	if insert.Error != nil {
		return 0, insert.Error
	}

	if insert.RowsAffected == 0 {
		return VoteAlreadyCast, nil
	}
	return VoteAccepted, nil
}

// HasVoted 判断访客是否已投票,用于禁用前台投票按钮。
func (s *VoteService) HasVoted(voterID string) (bool, error) {
	var count int64
	if err := s.db.Model(&db.Vote{}).Where("voter_id = ?", voterID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Counts 分别统计好评与差评数。两次查询之间不加事务,
// 结果仅用于展示,允许瞬时不一致。
func (s *VoteService) Counts() (likes, dislikes int64, err error) {
	if err = s.db.Model(&db.Vote{}).Where("choice = ?", db.VoteLike).Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&db.Vote{}).Where("choice = ?", db.VoteDislike).Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}
