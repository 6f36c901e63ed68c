package handler

import (
	"Amity/internal/api/dto"
	"Amity/internal/pkg/consts"
	"Amity/internal/pkg/response"
	"Amity/internal/pkg/util"
	"Amity/internal/service"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup 注册,multipart 表单,头像可选
func (s *AuthHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	if err := c.ShouldBind(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	signupDTO.Email = strings.TrimSpace(signupDTO.Email)
	signupDTO.Password = strings.TrimSpace(signupDTO.Password)
	signupDTO.PasswordChecker = strings.TrimSpace(signupDTO.PasswordChecker)
	signupDTO.Nickname = strings.TrimSpace(signupDTO.Nickname)

	if err := util.ValidateDTO(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	if !util.ValidateEmail(signupDTO.Email) {
		response.Error(c, service.ErrInvalidRequest)
		return
	}
	password, err := util.DecodePassword(signupDTO.Password)
	if err != nil || !util.ValidatePassword(password) {
		response.Error(c, service.ErrInvalidRequest)
		return
	}
	if signupDTO.Password != signupDTO.PasswordChecker {
		response.Error(c, service.ErrPasswordMismatch)
		return
	}
	if !util.ValidateNickname(signupDTO.Nickname) {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	profileImage, _ := c.FormFile("profileImage")

	userID, err := s.authSvc.Register(c.Request.Context(), signupDTO.Email, password, signupDTO.Nickname, profileImage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "注册成功", gin.H{"userId": userID})
}

// CheckNickname 昵称可用性查询
func (s *AuthHandler) CheckNickname(c *gin.Context) {
	nickname := strings.TrimSpace(c.Query("nickname"))
	if !util.ValidateNickname(nickname) {
		response.Fail(c, http.StatusBadRequest, service.CodeBadRequest,
			service.ErrInvalidRequest.Error(), dto.AvailabilityDTO{IsAvailable: false})
		return
	}

	if err := s.authSvc.CheckNicknameAvailability(c.Request.Context(), nickname); err != nil {
		if errors.Is(err, service.ErrNicknameExist) {
			response.Fail(c, http.StatusOK, service.CodeConflict,
				err.Error(), dto.AvailabilityDTO{IsAvailable: false})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, "昵称可以使用", dto.AvailabilityDTO{IsAvailable: true})
}

// CheckEmail 邮箱可用性查询
func (s *AuthHandler) CheckEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if !util.ValidateEmail(email) {
		response.Fail(c, http.StatusBadRequest, service.CodeBadRequest,
			service.ErrInvalidRequest.Error(), dto.AvailabilityDTO{IsAvailable: false})
		return
	}

	if err := s.authSvc.CheckEmailAvailability(c.Request.Context(), email); err != nil {
		if errors.Is(err, service.ErrEmailExist) {
			response.Fail(c, http.StatusOK, service.CodeConflict,
				err.Error(), dto.AvailabilityDTO{IsAvailable: false})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, "邮箱可以使用", dto.AvailabilityDTO{IsAvailable: true})
}

// Signin 登录,校验通过后下发会话 Cookie
func (s *AuthHandler) Signin(c *gin.Context) {
	var signinDTO dto.SigninDTO
	if err := c.ShouldBind(&signinDTO); err != nil {
		response.Error(c, err)
		return
	}
	signinDTO.Email = strings.TrimSpace(signinDTO.Email)
	signinDTO.Password = strings.TrimSpace(signinDTO.Password)

	if err := util.ValidateDTO(&signinDTO); err != nil {
		response.Error(c, err)
		return
	}
	password, err := util.DecodePassword(signinDTO.Password)
	if err != nil {
		response.Error(c, service.ErrInvalidRequest)
		return
	}

	sessionID, userID, err := s.authSvc.Login(c.Request.Context(), signinDTO.Email, password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(consts.SessionCookie, sessionID, consts.SessionCookieMaxAge, "/", "", false, true)
	response.Success(c, "登录成功", gin.H{"userId": userID})
}

// Logout 登出并清除会话 Cookie
func (s *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(consts.SessionCookie)
	if err != nil || sessionID == "" {
		response.Error(c, service.ErrUnauthenticated)
		return
	}

	if err = s.authSvc.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(consts.SessionCookie, "", -1, "/", "", false, true)
	response.NoContent(c)
}

// Withdraw 注销账号,级联清理全部数据
func (s *AuthHandler) Withdraw(c *gin.Context) {
	userID := c.GetUint64("user_id")
	sessionID := c.GetString("session_id")

	if err := s.authSvc.Withdraw(c.Request.Context(), sessionID, userID); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(consts.SessionCookie, "", -1, "/", "", false, true)
	response.NoContent(c)
}
