package model

import (
	"time"
)

type PostLike struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_post" json:"userId"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_user_post;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

func (l *PostLike) EntityID() uint64 {
	return l.ID
}

func (l *PostLike) SetEntityID(id uint64) {
	l.ID = id
}
