package filedb

import (
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	"time"
)

type PostRepo struct {
	store *Store
}

func NewPostRepo(store *Store) repository.PostRepo {
	return &PostRepo{store: store}
}

func (s *PostRepo) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	post, ok := s.store.Posts.FindByID(id)
	if !ok {
		return nil, nil
	}
	return post, nil
}

func (s *PostRepo) GetPostsByAuthorID(ctx context.Context, authorID uint64) ([]*model.Post, error) {
	return s.store.Posts.Filter(func(p *model.Post) bool {
		return p.AuthorID == authorID
	}), nil
}

func (s *PostRepo) GetPage(ctx context.Context, size int, lastID uint64) (*repository.PostPage, error) {
	items, hasNext, nextCursor := s.store.Posts.Page(size, lastID)
	return &repository.PostPage{Items: items, HasNext: hasNext, LastID: nextCursor}, nil
}

func (s *PostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	return s.store.Posts.Insert(post)
}

func (s *PostRepo) UpdatePost(ctx context.Context, post *model.Post) error {
	_, err := s.store.Posts.Update(post.ID, func(p *model.Post) {
		p.Title = post.Title
		p.Content = post.Content
		p.ContentImageKey = post.ContentImageKey
		p.UpdatedAt = time.Now()
	})
	return err
}

func (s *PostRepo) DeletePostCascade(ctx context.Context, id uint64) error {
	if _, err := s.store.Comments.DeleteWhere(func(c *model.Comment) bool {
		return c.PostID == id
	}); err != nil {
		return err
	}

	if _, err := s.store.PostLikes.DeleteWhere(func(l *model.PostLike) bool {
		return l.PostID == id
	}); err != nil {
		return err
	}

	if _, err := s.store.ViewHistories.DeleteWhere(func(v *model.ViewHistory) bool {
		return v.PostID == id
	}); err != nil {
		return err
	}

	_, err := s.store.Posts.Delete(id)
	return err
}
