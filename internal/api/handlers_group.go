package api

import "Amity/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
}
