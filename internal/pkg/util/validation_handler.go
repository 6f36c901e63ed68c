package util

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 返回原始的 validator.ValidationErrors,由 response.Error 统一归类为参数错误
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	base64Regex   = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	nicknameRegex = regexp.MustCompile(`^[^\s]{1,10}$`)
)

// ValidateEmail 校验邮箱格式
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateNickname 昵称不含空白字符且不超过 10 个字符
func ValidateNickname(nickname string) bool {
	return nicknameRegex.MatchString(nickname)
}

// DecodePassword 请求中的密码为 Base64 编码，解码后再做复杂度校验
func DecodePassword(encoded string) (string, error) {
	if !base64Regex.MatchString(encoded) {
		return "", errors.New("password is not base64 encoded")
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ValidatePassword 8~20 位，必须同时包含大写、小写、数字、特殊字符，且不含空白
func ValidatePassword(password string) bool {
	length := len([]rune(password))
	if length < 8 || length > 20 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":;{}|<>`, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
