package model

import (
	"time"
)

type ViewHistory struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_user_post" json:"userId"`
	PostID   uint64    `gorm:"not null;uniqueIndex:idx_user_post;index:idx_post_id" json:"postId"`
	ViewedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"viewedAt"`
}

func (ViewHistory) TableName() string {
	return "view_histories"
}

func (v *ViewHistory) EntityID() uint64 {
	return v.ID
}

func (v *ViewHistory) SetEntityID(id uint64) {
	v.ID = id
}
