package db

import "gorm.io/gorm"

// Page 保存以 Markdown 维护的内容页,如首页简介与 A/B 测试报告。
type Page struct {
	gorm.Model
	Slug    string `gorm:"uniqueIndex;not null"`
	Title   string `gorm:"not null"`
	Content string `gorm:"type:text"`
}
