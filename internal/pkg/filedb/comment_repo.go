package filedb

import (
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	"time"
)

type CommentRepo struct {
	store *Store
}

func NewCommentRepo(store *Store) repository.CommentRepo {
	return &CommentRepo{store: store}
}

func (s *CommentRepo) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	comment, ok := s.store.Comments.FindByID(id)
	if !ok {
		return nil, nil
	}
	return comment, nil
}

func (s *CommentRepo) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	return s.store.Comments.Filter(func(c *model.Comment) bool {
		return c.PostID == postID
	}), nil
}

func (s *CommentRepo) CountCommentsByPostID(ctx context.Context, postID uint64) (int64, error) {
	return s.store.Comments.Count(func(c *model.Comment) bool {
		return c.PostID == postID
	}), nil
}

func (s *CommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	now := time.Now()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	comment.UpdatedAt = now
	return s.store.Comments.Insert(comment)
}

func (s *CommentRepo) UpdateCommentContent(ctx context.Context, id uint64, content string) error {
	_, err := s.store.Comments.Update(id, func(c *model.Comment) {
		c.Content = content
		c.UpdatedAt = time.Now()
	})
	return err
}

func (s *CommentRepo) DeleteComment(ctx context.Context, id uint64) (int64, error) {
	deleted, err := s.store.Comments.Delete(id)
	if err != nil {
		return 0, err
	}
	if !deleted {
		return 0, nil
	}
	return 1, nil
}
