package consts

const (
	// SessionUserKey session_id -> user_id 缓存
	SessionUserKey = "session:user:"
)
