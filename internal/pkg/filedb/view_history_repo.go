package filedb

import (
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	"time"
)

type ViewHistoryRepo struct {
	store *Store
}

func NewViewHistoryRepo(store *Store) repository.ViewHistoryRepo {
	return &ViewHistoryRepo{store: store}
}

func (s *ViewHistoryRepo) CheckViewExists(ctx context.Context, userID, postID uint64) (bool, error) {
	_, ok := s.store.ViewHistories.Find(func(v *model.ViewHistory) bool {
		return v.UserID == userID && v.PostID == postID
	})
	return ok, nil
}

func (s *ViewHistoryRepo) CountViewsByPostID(ctx context.Context, postID uint64) (int64, error) {
	return s.store.ViewHistories.Count(func(v *model.ViewHistory) bool {
		return v.PostID == postID
	}), nil
}

func (s *ViewHistoryRepo) CreateViewHistory(ctx context.Context, view *model.ViewHistory) error {
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}
	return s.store.ViewHistories.Insert(view)
}
