package util

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}
