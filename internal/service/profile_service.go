package service

import (
	"github.com/mssas/portfolio/internal/db"
	"gorm.io/gorm"
)

// ProfileService 提供联系页展示的联系方式列表。
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 创建 ProfileService。
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// ListContacts 按 Sort 升序返回全部联系方式。
func (s *ProfileService) ListContacts() ([]db.ProfileContact, error) {
	var contacts []db.ProfileContact
	if err := s.db.Order("sort ASC, id ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
