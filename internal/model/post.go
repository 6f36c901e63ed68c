package model

import (
	"time"
)

type Post struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Content         string    `gorm:"not null" json:"content"`
	ContentImageKey *string   `gorm:"type:varchar(255)" json:"contentImageKey,omitempty"`
	AuthorID        uint64    `gorm:"not null;index:idx_author_id" json:"authorId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) EntityID() uint64 {
	return p.ID
}

func (p *Post) SetEntityID(id uint64) {
	p.ID = id
}
