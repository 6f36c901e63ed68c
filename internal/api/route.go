package api

import (
	"Amity/internal/api/middleware"
	"Amity/internal/pkg/logger"
	"Amity/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/signup", group.AuthHandler.Signup)
			authGroup.GET("/check-nickname", group.AuthHandler.CheckNickname)
			authGroup.GET("/check-email", group.AuthHandler.CheckEmail)
			authGroup.POST("/signin", group.AuthHandler.Signin)
			authGroup.POST("/logout", group.AuthHandler.Logout)

			loggedInGroup := authGroup.Group("")
			loggedInGroup.Use(middleware.AuthMiddleware(authSvc))
			{
				loggedInGroup.DELETE("/withdrawal", group.AuthHandler.Withdraw)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware(authSvc))
		{
			userGroup.GET("/me", group.UserHandler.GetMe)
			userGroup.PUT("/me", group.UserHandler.UpdateMe)
			userGroup.PATCH("/me/password", group.UserHandler.ChangePassword)
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware(authSvc))
		{
			postGroup.GET("", group.PostHandler.GetPage)
			postGroup.POST("", group.PostHandler.Create)

			postGroup.POST("/comments", group.PostActionHandler.CreateComment)
			postGroup.PUT("/comments", group.PostActionHandler.UpdateComment)
			postGroup.DELETE("/comments", group.PostActionHandler.DeleteComment)

			postGroup.POST("/likes", group.PostActionHandler.CreateLike)
			postGroup.DELETE("/likes", group.PostActionHandler.DeleteLike)

			postGroup.GET("/:postId", group.PostHandler.GetDetail)
			postGroup.PUT("/:postId", group.PostHandler.Update)
			postGroup.DELETE("/:postId", group.PostHandler.Delete)
		}
	}

	return r
}
