package wire

import (
	"Amity/internal/api"
	"Amity/internal/api/config"
	"Amity/internal/api/handler"
	"Amity/internal/model"
	"Amity/internal/pkg/database"
	"Amity/internal/pkg/filedb"
	"Amity/internal/repository"
	"Amity/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Repos 一组存储层实例,mysql 与 file 两种后端实现同一套接口
type Repos struct {
	UserRepo    repository.UserRepo
	PostRepo    repository.PostRepo
	CommentRepo repository.CommentRepo
	LikeRepo    repository.PostLikeRepo
	ViewRepo    repository.ViewHistoryRepo
	SessionRepo repository.LoginSessionRepo
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func buildGormRepos(db *gorm.DB) *Repos {
	return &Repos{
		UserRepo:    repository.NewUserRepo(db),
		PostRepo:    repository.NewPostRepo(db),
		CommentRepo: repository.NewCommentRepo(db),
		LikeRepo:    repository.NewPostLikeRepo(db),
		ViewRepo:    repository.NewViewHistoryRepo(db),
		SessionRepo: repository.NewLoginSessionRepo(db),
	}
}

func buildFileRepos(store *filedb.Store) *Repos {
	return &Repos{
		UserRepo:    filedb.NewUserRepo(store),
		PostRepo:    filedb.NewPostRepo(store),
		CommentRepo: filedb.NewCommentRepo(store),
		LikeRepo:    filedb.NewPostLikeRepo(store),
		ViewRepo:    filedb.NewViewHistoryRepo(store),
		SessionRepo: filedb.NewLoginSessionRepo(store),
	}
}

func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	var (
		repos *Repos
		db    *gorm.DB
		err   error
	)

	switch cfg.Storage.Driver {
	case "mysql":
		db, err = database.NewGormDB(&cfg.DB)
		if err != nil {
			return nil, err
		}
		if err = db.AutoMigrate(
			&model.User{},
			&model.Post{},
			&model.Comment{},
			&model.PostLike{},
			&model.ViewHistory{},
			&model.LoginSession{},
		); err != nil {
			return nil, err
		}
		repos = buildGormRepos(db)
	case "file", "":
		store, sErr := filedb.Open(cfg.Storage.DataDir)
		if sErr != nil {
			return nil, sErr
		}
		repos = buildFileRepos(store)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	authService := service.NewAuthService(repos.UserRepo, repos.PostRepo, repos.SessionRepo)
	userService := service.NewUserService(repos.UserRepo)
	postService := service.NewPostService(repos.PostRepo, repos.UserRepo, repos.CommentRepo, repos.LikeRepo, repos.ViewRepo)
	postActionService := service.NewPostActionService(repos.PostRepo, repos.UserRepo, repos.CommentRepo, repos.LikeRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
	}

	router := api.SetupRouter(handlers, authService)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
