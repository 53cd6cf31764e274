// internal/model/context.go
package model

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)
