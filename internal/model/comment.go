package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id" json:"authorId"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) EntityID() uint64 {
	return c.ID
}

func (c *Comment) SetEntityID(id uint64) {
	c.ID = id
}
