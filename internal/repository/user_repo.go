package repository

import (
	"Amity/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	UpdateUserPassword(ctx context.Context, id uint64, hashedPassword string) error
	// DeleteUserCascade 删除用户本身及其帖子、评论、点赞、浏览记录和登录会话
	DeleteUserCascade(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByNickname(ctx context.Context, nickname string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("nickname = ?", nickname).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	fields := []string{"nickname", "profile_image_key"}
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Select(fields).
		Updates(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *UserRepoImpl) UpdateUserPassword(ctx context.Context, id uint64, hashedPassword string) error {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword)
	return result.Error
}

func (s *UserRepoImpl) DeleteUserCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先清掉挂在该用户帖子下的他人数据,再删帖子本身
		postIDs := tx.Model(&model.Post{}).Select("id").Where("author_id = ?", id)
		if result := tx.Where("author_id = ? OR post_id IN (?)", id, postIDs).Delete(&model.Comment{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ? OR post_id IN (?)", id, postIDs).Delete(&model.PostLike{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ? OR post_id IN (?)", id, postIDs).Delete(&model.ViewHistory{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("author_id = ?", id).Delete(&model.Post{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ?", id).Delete(&model.LoginSession{}); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&model.User{}, id).Error
	})
}
