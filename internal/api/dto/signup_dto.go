package dto

// SignupDTO 注册表单 (multipart),profileImage 文件单独取
type SignupDTO struct {
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	PasswordChecker string `form:"passwordChecker" validate:"required"`
	Nickname        string `form:"nickname" validate:"required"`
}
