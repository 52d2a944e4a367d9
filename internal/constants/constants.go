package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

// 日期參數格式
const DateLayout = "2006-01-02"
