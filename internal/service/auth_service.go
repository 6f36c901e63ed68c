package service

import (
	"Amity/internal/model"
	"Amity/internal/pkg/consts"
	"Amity/internal/pkg/redis"
	"Amity/internal/pkg/security"
	"Amity/internal/repository"
	"context"
	log "log/slog"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SessionCacheTTL session_id -> user_id 缓存时长
const SessionCacheTTL = time.Hour

type AuthService interface {
	Register(ctx context.Context, email, password, nickname string, profileImage *multipart.FileHeader) (uint64, error)
	CheckEmailAvailability(ctx context.Context, email string) error
	CheckNicknameAvailability(ctx context.Context, nickname string) error
	// Login 校验凭证并签发新会话,同一用户旧会话连同缓存全部失效
	Login(ctx context.Context, email, password string) (string, uint64, error)
	Logout(ctx context.Context, sessionID string) error
	// Withdraw 注销账号,级联删除名下所有数据和图片
	Withdraw(ctx context.Context, sessionID string, userID uint64) error
	// Resolve 由会话 Cookie 解析当前登录用户
	Resolve(ctx context.Context, sessionID string) (*model.User, error)
}

type authServiceImpl struct {
	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	sessionRepo repository.LoginSessionRepo
}

func NewAuthService(userRepo repository.UserRepo, postRepo repository.PostRepo, sessionRepo repository.LoginSessionRepo) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		postRepo:    postRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, email, password, nickname string, profileImage *multipart.FileHeader) (uint64, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, UnExpectedError
	}
	if existing != nil {
		return 0, ErrEmailExist
	}

	existing, err = s.userRepo.GetUserByNickname(ctx, nickname)
	if err != nil {
		return 0, UnExpectedError
	}
	if existing != nil {
		return 0, ErrNicknameExist
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return 0, UnExpectedError
	}

	imageKey, err := saveProfileImage(ctx, profileImage)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Email:           email,
		Nickname:        nickname,
		Password:        hashed,
		ProfileImageKey: imageKey,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "create user failed", "err", err)
		deleteImage(ctx, imageKey)
		return 0, UnExpectedError
	}
	return user.ID, nil
}

func (s *authServiceImpl) CheckEmailAvailability(ctx context.Context, email string) error {
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return UnExpectedError
	}
	if existing != nil {
		return ErrEmailExist
	}
	return nil
}

func (s *authServiceImpl) CheckNicknameAvailability(ctx context.Context, nickname string) error {
	existing, err := s.userRepo.GetUserByNickname(ctx, nickname)
	if err != nil {
		return UnExpectedError
	}
	if existing != nil {
		return ErrNicknameExist
	}
	return nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, uint64, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", 0, UnExpectedError
	}
	if user == nil {
		return "", 0, ErrCredentialIncorrect
	}
	if err = security.CheckPasswordHash(password, user.Password); err != nil {
		return "", 0, ErrCredentialIncorrect
	}

	// 单点登录:同一用户旧会话全部作废,被作废会话的缓存必须同步清掉,
	// 否则被顶下线的设备在缓存过期前仍可通过认证
	evicted, err := s.sessionRepo.DeleteAllByUserID(ctx, user.ID)
	if err != nil {
		return "", 0, UnExpectedError
	}
	for _, sid := range evicted {
		s.dropSessionCache(ctx, sid)
	}

	sessionID := uuid.NewString()
	session := &model.LoginSession{
		SessionID: sessionID,
		UserID:    user.ID,
	}
	if err = s.sessionRepo.CreateSession(ctx, session); err != nil {
		return "", 0, UnExpectedError
	}
	s.cacheSession(ctx, sessionID, user.ID)
	return sessionID, user.ID, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if _, err := s.sessionRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		return UnExpectedError
	}
	s.dropSessionCache(ctx, sessionID)
	return nil
}

func (s *authServiceImpl) Withdraw(ctx context.Context, sessionID string, userID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 先收集名下帖子的配图,级联删除后再清理对象存储
	posts, err := s.postRepo.GetPostsByAuthorID(ctx, userID)
	if err != nil {
		return UnExpectedError
	}

	// 名下全部会话连同缓存一并作废,级联删除只清存储层的行
	evicted, err := s.sessionRepo.DeleteAllByUserID(ctx, userID)
	if err != nil {
		return UnExpectedError
	}

	if err = s.userRepo.DeleteUserCascade(ctx, userID); err != nil {
		log.ErrorContext(ctx, "delete user cascade failed", "user_id", userID, "err", err)
		return UnExpectedError
	}

	deleteImage(ctx, user.ProfileImageKey)
	for _, post := range posts {
		deleteImage(ctx, post.ContentImageKey)
	}
	for _, sid := range evicted {
		s.dropSessionCache(ctx, sid)
	}
	s.dropSessionCache(ctx, sessionID)
	return nil
}

func (s *authServiceImpl) Resolve(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, ErrUnauthenticated
	}

	userID, ok := s.cachedSessionUser(ctx, sessionID)
	if !ok {
		session, err := s.sessionRepo.GetBySessionID(ctx, sessionID)
		if err != nil {
			return nil, UnExpectedError
		}
		if session == nil {
			return nil, ErrUnauthenticated
		}
		userID = session.UserID
		s.cacheSession(ctx, sessionID, userID)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func (s *authServiceImpl) cacheSession(ctx context.Context, sessionID string, userID uint64) {
	if !redis.Enabled() {
		return
	}
	key := consts.SessionUserKey + sessionID
	if err := redis.SetWithExpiration(ctx, key, strconv.FormatUint(userID, 10), SessionCacheTTL); err != nil {
		log.WarnContext(ctx, "cache session failed", "err", err)
	}
}

func (s *authServiceImpl) cachedSessionUser(ctx context.Context, sessionID string) (uint64, bool) {
	if !redis.Enabled() {
		return 0, false
	}
	value, err := redis.GetValue(ctx, consts.SessionUserKey+sessionID)
	if err != nil || value == "" {
		return 0, false
	}
	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}

func (s *authServiceImpl) dropSessionCache(ctx context.Context, sessionID string) {
	if !redis.Enabled() {
		return
	}
	if err := redis.DeleteKey(ctx, consts.SessionUserKey+sessionID); err != nil {
		log.WarnContext(ctx, "drop session cache failed", "err", err)
	}
}
