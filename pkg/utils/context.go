package utils

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)
