package model

import (
	"time"
)

type LoginSession struct {
	SessionID string    `gorm:"type:varchar(64);primaryKey" json:"sessionId"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LoginSession) TableName() string {
	return "login_sessions"
}
