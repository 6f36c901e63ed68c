package handler

import (
	"Amity/internal/api/dto"
	"Amity/internal/pkg/consts"
	"Amity/internal/pkg/response"
	"Amity/internal/pkg/util"
	"Amity/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// GetPage 帖子摘要列表,游标分页
func (s *PostHandler) GetPage(c *gin.Context) {
	size := consts.DefaultPageSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, service.ErrInvalidRequest)
			return
		}
		size = parsed
	}

	var lastID uint64
	if raw := c.Query("lastId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed < 1 {
			response.Error(c, service.ErrInvalidRequest)
			return
		}
		lastID = parsed
	}

	page, err := s.postSvc.GetPostPage(c.Request.Context(), size, lastID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 空页也带上分页信息,业务码与普通 404 区分开
	if len(page.Content) == 0 {
		response.Fail(c, http.StatusOK, service.CodeNotFound, "没有更多帖子", page)
		return
	}
	response.Success(c, "查询成功", page)
}

// GetDetail 帖子详情,comment=n 时不带评论列表
func (s *PostHandler) GetDetail(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || postID < 1 {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	commentFlag := c.DefaultQuery("comment", "y")
	if commentFlag != "y" && commentFlag != "n" {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	detail, err := s.postSvc.GetPostDetail(c.Request.Context(), userID, postID, commentFlag == "y")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", detail)
}

func (s *PostHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreatePostDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	postImage, _ := c.FormFile("postImage")

	postID, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO, postImage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "发布成功", gin.H{"postId": postID})
}

func (s *PostHandler) Update(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || postID < 1 {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	var updateDTO dto.UpdatePostDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	postImage, _ := c.FormFile("postImage")

	updatedID, err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &updateDTO, postImage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "修改成功", gin.H{"postId": updatedID})
}

func (s *PostHandler) Delete(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || postID < 1 {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
