package handler

import (
	"Amity/internal/api/dto"
	"Amity/internal/pkg/response"
	"Amity/internal/pkg/util"
	"Amity/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetUint64("user_id")

	info, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", info)
}

// UpdateMe 修改昵称/头像,至少要改一项
func (s *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var updateDTO dto.UpdateUserDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	profileImage, _ := c.FormFile("profileImage")

	if updateDTO.Nickname == "" && !updateDTO.IsProfileImageRemoved && profileImage == nil {
		response.Error(c, service.ErrInvalidRequest)
		return
	}
	if updateDTO.Nickname != "" && !util.ValidateNickname(updateDTO.Nickname) {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	updated, err := s.userSvc.UpdateUser(c.Request.Context(), userID, &updateDTO, profileImage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "修改成功", updated)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var changeDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}

	currentPassword, err := util.DecodePassword(changeDTO.CurrentPassword)
	if err != nil {
		response.Error(c, service.ErrInvalidRequest)
		return
	}
	newPassword, err := util.DecodePassword(changeDTO.NewPassword)
	if err != nil || !util.ValidatePassword(newPassword) {
		response.Error(c, service.ErrInvalidRequest)
		return
	}
	passwordCheck, err := util.DecodePassword(changeDTO.PasswordCheck)
	if err != nil {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	if err = s.userSvc.UpdatePassword(c.Request.Context(), userID, currentPassword, newPassword, passwordCheck); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "密码修改成功", gin.H{"userId": userID})
}
