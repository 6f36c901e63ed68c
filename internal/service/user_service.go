package service

import (
	"Amity/internal/api/dto"
	"Amity/internal/pkg/security"
	"Amity/internal/repository"
	"context"
	log "log/slog"
	"mime/multipart"
)

type UserService interface {
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserInfoDTO, error)
	UpdateUser(ctx context.Context, userID uint64, updateDTO *dto.UpdateUserDTO, profileImage *multipart.FileHeader) (*dto.UpdatedUserDTO, error)
	UpdatePassword(ctx context.Context, userID uint64, currentPassword, newPassword, passwordCheck string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserInfoDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserInfoDTO{
		UserID:          user.ID,
		Email:           user.Email,
		Nickname:        user.Nickname,
		ProfileImageURL: presignImageURL(ctx, user.ProfileImageKey),
		CreatedDateTime: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, userID uint64, updateDTO *dto.UpdateUserDTO, profileImage *multipart.FileHeader) (*dto.UpdatedUserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	nickname := updateDTO.Nickname
	if nickname != "" {
		if nickname == user.Nickname {
			return nil, ErrNicknameSame
		}
		existing, err := s.userRepo.GetUserByNickname(ctx, nickname)
		if err != nil {
			return nil, UnExpectedError
		}
		if existing != nil {
			return nil, ErrNicknameExist
		}
		user.Nickname = nickname
	}

	if updateDTO.IsProfileImageRemoved && user.ProfileImageKey != nil {
		deleteImage(ctx, user.ProfileImageKey)
		user.ProfileImageKey = nil
	}

	if profileImage != nil {
		newKey, err := saveProfileImage(ctx, profileImage)
		if err != nil {
			return nil, err
		}
		if newKey != nil {
			deleteImage(ctx, user.ProfileImageKey)
			user.ProfileImageKey = newKey
		}
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "update user failed", "user_id", userID, "err", err)
		return nil, UnExpectedError
	}

	return &dto.UpdatedUserDTO{
		ID:              user.ID,
		Name:            user.Nickname,
		ProfileImageURL: presignImageURL(ctx, user.ProfileImageKey),
	}, nil
}

func (s *userServiceImpl) UpdatePassword(ctx context.Context, userID uint64, currentPassword, newPassword, passwordCheck string) error {
	if newPassword != passwordCheck {
		return ErrPasswordMismatch
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(currentPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(newPassword, user.Password); err == nil {
		return ErrPasswordSame
	}

	hashed, err := security.HashPassword(newPassword)
	if err != nil {
		return UnExpectedError
	}
	if err = s.userRepo.UpdateUserPassword(ctx, userID, hashed); err != nil {
		log.ErrorContext(ctx, "update password failed", "user_id", userID, "err", err)
		return UnExpectedError
	}
	return nil
}
