package handler

import (
	"Amity/internal/api/dto"
	"Amity/internal/pkg/response"
	"Amity/internal/pkg/util"
	"Amity/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreateCommentDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.CreateComment(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "评论成功", gin.H{"comment": comment})
}

func (s *PostActionHandler) UpdateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var updateDTO dto.UpdateCommentDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	commentID, err := s.actionSvc.UpdateComment(c.Request.Context(), userID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "评论修改成功", gin.H{"commentId": commentID})
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var deleteDTO dto.DeleteCommentDTO
	if err := c.ShouldBind(&deleteDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&deleteDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.actionSvc.DeleteComment(c.Request.Context(), userID, deleteDTO.CommentID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *PostActionHandler) CreateLike(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var likeDTO dto.LikeDTO
	if err := c.ShouldBind(&likeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&likeDTO); err != nil {
		response.Error(c, err)
		return
	}

	likeID, err := s.actionSvc.CreateLike(c.Request.Context(), userID, likeDTO.PostID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "点赞成功", gin.H{"likeId": likeID})
}

func (s *PostActionHandler) DeleteLike(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var likeDTO dto.LikeDTO
	if err := c.ShouldBind(&likeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&likeDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.actionSvc.DeleteLike(c.Request.Context(), userID, likeDTO.PostID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
