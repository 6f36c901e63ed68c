package dto

type SigninDTO struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type AvailabilityDTO struct {
	IsAvailable bool `json:"isAvailable"`
}
