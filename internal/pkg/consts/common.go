package consts

const (
	MimePrefixImage = "image"
)

const (
	// SessionCookie 登录会话 Cookie 名称
	SessionCookie = "session_id"
	// SessionCookieMaxAge 7 天
	SessionCookieMaxAge = 60 * 60 * 24 * 7
)

const (
	DefaultPageSize = 5
	// NoMoreCursor 没有更多数据时返回的游标哨兵值
	NoMoreCursor = -1
)
