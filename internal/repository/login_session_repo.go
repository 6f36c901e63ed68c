package repository

import (
	"Amity/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LoginSessionRepo interface {
	GetBySessionID(ctx context.Context, sessionID string) (*model.LoginSession, error)
	CreateSession(ctx context.Context, session *model.LoginSession) error
	DeleteBySessionID(ctx context.Context, sessionID string) (int64, error)
	// DeleteAllByUserID 删除该用户的全部会话并返回被删除的 session_id,
	// 调用方据此同步清理缓存
	DeleteAllByUserID(ctx context.Context, userID uint64) ([]string, error)
}

type LoginSessionRepoImpl struct {
	db *gorm.DB
}

func NewLoginSessionRepo(db *gorm.DB) LoginSessionRepo {
	return &LoginSessionRepoImpl{db: db}
}

func (s *LoginSessionRepoImpl) GetBySessionID(ctx context.Context, sessionID string) (*model.LoginSession, error) {
	session := &model.LoginSession{}
	result := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&session)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return session, nil
}

func (s *LoginSessionRepoImpl) CreateSession(ctx context.Context, session *model.LoginSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *LoginSessionRepoImpl) DeleteBySessionID(ctx context.Context, sessionID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.LoginSession{})
	return result.RowsAffected, result.Error
}

func (s *LoginSessionRepoImpl) DeleteAllByUserID(ctx context.Context, userID uint64) ([]string, error) {
	ids := make([]string, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.LoginSession{}).
			Where("user_id = ?", userID).
			Pluck("session_id", &ids).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.LoginSession{}).Error
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
