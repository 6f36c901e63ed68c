package middleware

import (
	"Amity/internal/pkg/consts"
	"Amity/internal/pkg/response"
	"Amity/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验会话 Cookie 并将用户身份注入 Context
func AuthMiddleware(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(consts.SessionCookie)
		if err != nil || sessionID == "" {
			response.Error(c, service.ErrUnauthenticated)
			c.Abort()
			return
		}

		user, err := authSvc.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("session_id", sessionID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
