package service

import (
	"errors"

	"github.com/mssas/portfolio/internal/db"
	"gorm.io/gorm"
)

// ErrPageNotFound 表示请求的内容页不存在。
var ErrPageNotFound = errors.New("page not found")

// PageService provides access to markdown content pages such as the home intro.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// GetBySlug fetches a content page for a given slug.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}
