package repository

import (
	"Amity/internal/model"
	"context"

	"gorm.io/gorm"
)

type ViewHistoryRepo interface {
	CheckViewExists(ctx context.Context, userID, postID uint64) (bool, error)
	CountViewsByPostID(ctx context.Context, postID uint64) (int64, error)
	CreateViewHistory(ctx context.Context, view *model.ViewHistory) error
}

type ViewHistoryRepoImpl struct {
	db *gorm.DB
}

func NewViewHistoryRepo(db *gorm.DB) ViewHistoryRepo {
	return &ViewHistoryRepoImpl{db: db}
}

func (s *ViewHistoryRepoImpl) CheckViewExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ViewHistory{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *ViewHistoryRepoImpl) CountViewsByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ViewHistory{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *ViewHistoryRepoImpl) CreateViewHistory(ctx context.Context, view *model.ViewHistory) error {
	return s.db.WithContext(ctx).Create(view).Error
}
