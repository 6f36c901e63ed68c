package filedb

import (
	"Amity/internal/model"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Store 文件存储后端。每个实体一个集合文件加一个计数器文件，
// 登录会话只存内存，进程重启即失效。
type Store struct {
	Users         *Collection[*model.User]
	Posts         *Collection[*model.Post]
	Comments      *Collection[*model.Comment]
	PostLikes     *Collection[*model.PostLike]
	ViewHistories *Collection[*model.ViewHistory]

	sessionMu sync.Mutex
	sessions  map[string]*model.LoginSession
}

// Open 加载 dataDir 下的全部集合，目录不存在时自动创建
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data dir")
	}

	users, err := OpenCollection[*model.User](dataDir, "user")
	if err != nil {
		return nil, err
	}
	posts, err := OpenCollection[*model.Post](dataDir, "post")
	if err != nil {
		return nil, err
	}
	comments, err := OpenCollection[*model.Comment](dataDir, "comment")
	if err != nil {
		return nil, err
	}
	likes, err := OpenCollection[*model.PostLike](dataDir, "like")
	if err != nil {
		return nil, err
	}
	views, err := OpenCollection[*model.ViewHistory](dataDir, "viewHistory")
	if err != nil {
		return nil, err
	}

	return &Store{
		Users:         users,
		Posts:         posts,
		Comments:      comments,
		PostLikes:     likes,
		ViewHistories: views,
		sessions:      make(map[string]*model.LoginSession),
	}, nil
}
