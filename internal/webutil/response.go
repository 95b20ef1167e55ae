// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_4_vocab_srs/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを HTTP ステータスと JSON のエラーレスポンスに変換して返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", "error", err, "status", statusCode)
		}
	} else {
		errResp = model.APIErrorResponse{Error: detailFor(err, statusCode)}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Unhandled error", "error", err)
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// detailFor は AppError でないエラーに対するレスポンス内容を決めます
func detailFor(err error, statusCode int) model.ErrorDetail {
	switch {
	case errors.Is(err, model.ErrInvalidRating):
		return model.ErrorDetail{Code: "INVALID_RATING", Message: "評価は0から5の整数で指定してください。", Field: "rating"}
	case errors.Is(err, model.ErrItemNotFound):
		return model.ErrorDetail{Code: "ITEM_NOT_FOUND", Message: "指定されたカードが見つかりません。", Field: "card_id"}
	case errors.Is(err, model.ErrSessionNotFound):
		return model.ErrorDetail{Code: "SESSION_NOT_FOUND", Message: "復習セッションが見つかりません。"}
	case errors.Is(err, model.ErrSessionCompleted):
		return model.ErrorDetail{Code: "SESSION_COMPLETED", Message: "この復習セッションは既に完了しています。"}
	}

	switch statusCode {
	case http.StatusBadRequest:
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "リクエストの内容が正しくありません。"}
	case http.StatusNotFound:
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "リソースが見つかりません。"}
	case http.StatusConflict:
		return model.ErrorDetail{Code: "CONFLICT", Message: "リソースが競合しています。"}
	case http.StatusForbidden:
		return model.ErrorDetail{Code: "FORBIDDEN", Message: "この操作は許可されていません。"}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "サーバー内部でエラーが発生しました。"}
	}
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse はバリデーションエラーを日本語メッセージ付きの AppError にまとめます
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
