package service

import (
	"errors"
	"net/http"
)

// 业务码，独立于 HTTP 状态码
const (
	CodeOK          = 2000
	CodeCreated     = 2001
	CodeBadRequest  = 4000
	CodeUnauth      = 4001
	CodeForbidden   = 4003
	CodeNotFound    = 4004
	CodeConflict    = 4009
	CodeServerError = 5000
)

var (
	ErrInvalidRequest      = errors.New("无效的请求")
	ErrEmailExist          = errors.New("邮箱已被注册")
	ErrNicknameExist       = errors.New("昵称已被使用")
	ErrNicknameSame        = errors.New("昵称与原昵称相同")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrAuthorNotFound      = errors.New("作者不存在")
	ErrPostNotFound        = errors.New("帖子不存在")
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrLikeNotFound        = errors.New("点赞记录不存在")
	ErrLikeDuplicate       = errors.New("已经点过赞了")
	ErrUnauthenticated     = errors.New("需要认证信息")
	ErrCredentialIncorrect = errors.New("邮箱或密码错误")
	ErrPasswordIncorrect   = errors.New("当前密码不正确")
	ErrPasswordMismatch    = errors.New("两次输入的密码不一致")
	ErrPasswordSame        = errors.New("新密码不能与当前密码相同")
	ErrNotOwner            = errors.New("没有操作权限")
	ErrFileNotSupported    = errors.New("不支持的文件类型")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

// ErrCode 错误对应的 HTTP 状态码与业务码
type ErrCode struct {
	Status int
	Code   int
}

var ErrorMap = map[error]ErrCode{
	ErrInvalidRequest:      {http.StatusBadRequest, CodeBadRequest},
	ErrEmailExist:          {http.StatusOK, CodeConflict},
	ErrNicknameExist:       {http.StatusOK, CodeConflict},
	ErrNicknameSame:        {http.StatusOK, CodeConflict},
	ErrUserNotFound:        {http.StatusOK, CodeNotFound},
	ErrAuthorNotFound:      {http.StatusOK, CodeNotFound},
	ErrPostNotFound:        {http.StatusOK, CodeNotFound},
	ErrCommentNotFound:     {http.StatusOK, CodeNotFound},
	ErrLikeNotFound:        {http.StatusOK, CodeNotFound},
	ErrLikeDuplicate:       {http.StatusOK, CodeConflict},
	ErrUnauthenticated:     {http.StatusUnauthorized, CodeUnauth},
	ErrCredentialIncorrect: {http.StatusOK, CodeUnauth},
	ErrPasswordIncorrect:   {http.StatusOK, CodeForbidden},
	ErrPasswordMismatch:    {http.StatusBadRequest, CodeBadRequest},
	ErrPasswordSame:        {http.StatusOK, CodeBadRequest},
	ErrNotOwner:            {http.StatusOK, CodeForbidden},
	ErrFileNotSupported:    {http.StatusBadRequest, CodeBadRequest},
	UnExpectedError:        {http.StatusInternalServerError, CodeServerError},
}
