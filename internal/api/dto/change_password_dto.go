package dto

type ChangePasswordDTO struct {
	CurrentPassword string `form:"currentPassword" validate:"required"`
	NewPassword     string `form:"newPassword" validate:"required"`
	PasswordCheck   string `form:"passwordCheck" validate:"required"`
}
