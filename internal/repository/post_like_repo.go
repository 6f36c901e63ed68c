package repository

import (
	"Amity/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostLikeRepo interface {
	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)
	CountLikesByPostID(ctx context.Context, postID uint64) (int64, error)
	CreateLike(ctx context.Context, like *model.PostLike) error
	DeleteLike(ctx context.Context, userID, postID uint64) (int64, error)
}

type PostLikeRepoImpl struct {
	db *gorm.DB
}

func NewPostLikeRepo(db *gorm.DB) PostLikeRepo {
	return &PostLikeRepoImpl{db: db}
}

func (s *PostLikeRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostLikeRepoImpl) CountLikesByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *PostLikeRepoImpl) CreateLike(ctx context.Context, like *model.PostLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *PostLikeRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostLike{})
	return result.RowsAffected, result.Error
}
