package filedb

import (
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	"time"
)

type PostLikeRepo struct {
	store *Store
}

func NewPostLikeRepo(store *Store) repository.PostLikeRepo {
	return &PostLikeRepo{store: store}
}

func (s *PostLikeRepo) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	_, ok := s.store.PostLikes.Find(func(l *model.PostLike) bool {
		return l.UserID == userID && l.PostID == postID
	})
	return ok, nil
}

func (s *PostLikeRepo) CountLikesByPostID(ctx context.Context, postID uint64) (int64, error) {
	return s.store.PostLikes.Count(func(l *model.PostLike) bool {
		return l.PostID == postID
	}), nil
}

func (s *PostLikeRepo) CreateLike(ctx context.Context, like *model.PostLike) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	return s.store.PostLikes.Insert(like)
}

func (s *PostLikeRepo) DeleteLike(ctx context.Context, userID, postID uint64) (int64, error) {
	return s.store.PostLikes.DeleteWhere(func(l *model.PostLike) bool {
		return l.UserID == userID && l.PostID == postID
	})
}
