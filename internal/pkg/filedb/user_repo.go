package filedb

import (
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	"time"
)

// UserRepo 文件后端的用户仓储。级联删除为逐集合顺序执行，
// 中途失败不回滚，这是文件后端相对关系型后端的已知差异。
type UserRepo struct {
	store *Store
}

func NewUserRepo(store *Store) repository.UserRepo {
	return &UserRepo{store: store}
}

func (s *UserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user, ok := s.store.Users.FindByID(id)
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := s.store.Users.Find(func(u *model.User) bool {
		return u.Email == email
	})
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *UserRepo) GetUserByNickname(ctx context.Context, nickname string) (*model.User, error) {
	user, ok := s.store.Users.Find(func(u *model.User) bool {
		return u.Nickname == nickname
	})
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	return s.store.Users.Insert(user)
}

func (s *UserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	_, err := s.store.Users.Update(user.ID, func(u *model.User) {
		u.Nickname = user.Nickname
		u.ProfileImageKey = user.ProfileImageKey
		u.UpdatedAt = time.Now()
	})
	return err
}

func (s *UserRepo) UpdateUserPassword(ctx context.Context, id uint64, hashedPassword string) error {
	_, err := s.store.Users.Update(id, func(u *model.User) {
		u.Password = hashedPassword
		u.UpdatedAt = time.Now()
	})
	return err
}

func (s *UserRepo) DeleteUserCascade(ctx context.Context, id uint64) error {
	// 先记下该用户的帖子 id,挂在这些帖子下的他人数据也要一并清掉
	ownPosts := make(map[uint64]struct{})
	for _, p := range s.store.Posts.Filter(func(p *model.Post) bool {
		return p.AuthorID == id
	}) {
		ownPosts[p.ID] = struct{}{}
	}

	if _, err := s.store.Comments.DeleteWhere(func(c *model.Comment) bool {
		_, onOwnPost := ownPosts[c.PostID]
		return c.AuthorID == id || onOwnPost
	}); err != nil {
		return err
	}

	if _, err := s.store.PostLikes.DeleteWhere(func(l *model.PostLike) bool {
		_, onOwnPost := ownPosts[l.PostID]
		return l.UserID == id || onOwnPost
	}); err != nil {
		return err
	}

	if _, err := s.store.ViewHistories.DeleteWhere(func(v *model.ViewHistory) bool {
		_, onOwnPost := ownPosts[v.PostID]
		return v.UserID == id || onOwnPost
	}); err != nil {
		return err
	}

	if _, err := s.store.Posts.DeleteWhere(func(p *model.Post) bool {
		return p.AuthorID == id
	}); err != nil {
		return err
	}

	s.store.sessionMu.Lock()
	for sid, session := range s.store.sessions {
		if session.UserID == id {
			delete(s.store.sessions, sid)
		}
	}
	s.store.sessionMu.Unlock()

	_, err := s.store.Users.Delete(id)
	return err
}
