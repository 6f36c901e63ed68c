package dto

// UserInfoDTO 当前登录用户信息
type UserInfoDTO struct {
	UserID          uint64  `json:"userId"`
	Email           string  `json:"email"`
	Nickname        string  `json:"nickname"`
	ProfileImageURL *string `json:"profileImageUrl"`
	CreatedDateTime string  `json:"createdDateTime"`
}

// UpdateUserDTO 修改昵称/头像 (multipart),profileImage 文件单独取
type UpdateUserDTO struct {
	Nickname              string `form:"nickname"`
	IsProfileImageRemoved bool   `form:"isProfileImageRemoved"`
}

// UpdatedUserDTO 修改后的用户摘要
type UpdatedUserDTO struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
