package model

import (
	"time"
)

type User struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Nickname        string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_nickname" json:"nickname"`
	// Password 散列值。文件后端靠 JSON 序列化落盘,所以这里不能用 json:"-",
	// 对外输出一律走 DTO,不直接序列化本结构
	Password        string    `gorm:"type:varchar(255);not null" json:"password"`
	ProfileImageKey *string   `gorm:"type:varchar(255)" json:"profileImageKey,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) EntityID() uint64 {
	return u.ID
}

func (u *User) SetEntityID(id uint64) {
	u.ID = id
}
