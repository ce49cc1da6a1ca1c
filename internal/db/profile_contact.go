package db

import "gorm.io/gorm"

// ProfileContact 保存联系页展示的联系方式,Sort 越小越靠前。
type ProfileContact struct {
	gorm.Model
	Platform string `gorm:"size:50;not null"`
	Label    string `gorm:"size:120;not null"`
	Link     string `gorm:"size:255"`
	Sort     int    `gorm:"default:0"`
}

// TableName 返回自定义表名,避免自动复数化导致的歧义。
func (ProfileContact) TableName() string {
	return "profile_contacts"
}
