package repository

import (
	"Amity/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	CountCommentsByPostID(ctx context.Context, postID uint64) (int64, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	UpdateCommentContent(ctx context.Context, id uint64, content string) error
	DeleteComment(ctx context.Context, id uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).First(comment, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return comment, nil
}

func (s *CommentRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *CommentRepoImpl) CountCommentsByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) UpdateCommentContent(ctx context.Context, id uint64, content string) error {
	result := s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("content", content)
	return result.Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Comment{}, id)
	return result.RowsAffected, result.Error
}
