// internal/model/error.go
package model

import (
	"errors"
	"fmt"
	"strings"
)

// アプリケーション固有のエラー
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInternalServer        = errors.New("internal server error")
	ErrConflict              = errors.New("resource conflict")
	ErrEnrichmentUnavailable = errors.New("chat context unavailable")
	ErrUpstreamUnavailable   = errors.New("upstream service unavailable")
)

// ErrorDetail はクライアントに返すエラー内容
type ErrorDetail struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	InvalidIDs []int  `json:"invalid_ids,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細と、原因となったエラーを保持する
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

// NewUnknownPartsError は存在しない部位IDを含むリクエストのエラーを作る
func NewUnknownPartsError(ids []int) *AppError {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = fmt.Sprint(id)
	}
	appErr := NewAppError(
		"UNKNOWN_PART_IDS",
		"存在しない部位IDが含まれています: "+strings.Join(strs, ", "),
		"part_ids",
		ErrInvalidInput,
	)
	appErr.Detail.InvalidIDs = ids
	return appErr
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
