package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// tenantFromRequest は認証ミドルウェアが設定したテナントIDを取り出します。
// 取り出せなければエラーレスポンスを書いて false を返す。
func tenantFromRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return tenantID, true
}

// uuidURLParam は URL パラメータを UUID として読みます
func uuidURLParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String(name, raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// handlerLogger はリクエストスコープのロガーにハンドラ名を付けます
func handlerLogger(r *http.Request, fallback *slog.Logger, name string) *slog.Logger {
	return middleware.LoggerOr(r.Context(), fallback).With(slog.String("handler", name))
}
