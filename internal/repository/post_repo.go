package repository

import (
	"Amity/internal/model"
	"Amity/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PostPage 游标分页结果。LastID 为最后一条的 id；没有更多数据时为 -1
type PostPage struct {
	Items   []*model.Post
	HasNext bool
	LastID  int64
}

type PostRepo interface {
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByAuthorID(ctx context.Context, authorID uint64) ([]*model.Post, error)
	// GetPage 按 id 降序取一页，lastID 为 0 时从最新开始
	GetPage(ctx context.Context, size int, lastID uint64) (*PostPage, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	// DeletePostCascade 删除帖子及其评论、点赞、浏览记录
	DeletePostCascade(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) GetPostsByAuthorID(ctx context.Context, authorID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPage(ctx context.Context, size int, lastID uint64) (*PostPage, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{})
	if lastID > 0 {
		// 游标不再指向任何行时按没有更多数据处理
		var exists int64
		if err := s.db.WithContext(ctx).Model(&model.Post{}).
			Where("id = ?", lastID).Count(&exists).Error; err != nil {
			return nil, err
		}
		if exists == 0 {
			return &PostPage{Items: []*model.Post{}, HasNext: false, LastID: consts.NoMoreCursor}, nil
		}
		query = query.Where("id < ?", lastID)
	}

	// 多取一条判断是否还有下一页
	posts := make([]*model.Post, 0, size+1)
	result := query.Order("id DESC").Limit(size + 1).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	hasNext := len(posts) > size
	if hasNext {
		posts = posts[:size]
	}

	lastCursor := int64(consts.NoMoreCursor)
	if hasNext && len(posts) > 0 {
		lastCursor = int64(posts[len(posts)-1].ID)
	}

	return &PostPage{Items: posts, HasNext: hasNext, LastID: lastCursor}, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	fields := []string{"title", "content", "content_image_key"}
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select(fields).
		Updates(post)
	return result.Error
}

func (s *PostRepoImpl) DeletePostCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("post_id = ?", id).Delete(&model.Comment{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("post_id = ?", id).Delete(&model.PostLike{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("post_id = ?", id).Delete(&model.ViewHistory{}); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&model.Post{}, id).Error
	})
}
