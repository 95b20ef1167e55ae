// internal/model/error.go
package model

import (
	"errors"
	"fmt"

	"go_4_vocab_srs/internal/srs"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// スケジューリング関連のエラー
var (
	ErrItemNotFound     = fmt.Errorf("item not found: %w", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("review session not found: %w", ErrNotFound)
	ErrSessionCompleted = fmt.Errorf("review session already completed: %w", ErrConflict)
	ErrInvalidRating    = srs.ErrInvalidRating
	// ErrPersistenceWrite はローカル側の保存失敗。メモリ上のセッションは有効なまま。
	ErrPersistenceWrite = errors.New("session persistence write failed")
)

// AppError はクライアントに返すエラー情報と元のエラーをまとめたものです。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
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

// ErrorDetail はエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
