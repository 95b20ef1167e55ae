package middleware

import (
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発時用 (auth.enabled=false) のミドルウェアです。
// X-Tenant-ID ヘッダーのUUIDをそのままテナントIDとして使います。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			logger.Warn("[DEV AUTH] X-Tenant-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDヘッダーが必要です。", "", model.ErrForbidden))
			return
		}

		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil || tenantID == uuid.Nil {
			logger.Warn("[DEV AUTH] Invalid X-Tenant-ID format", "value", tenantIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDの形式が正しくありません。", "", model.ErrForbidden))
			return
		}

		next.ServeHTTP(w, r.WithContext(withTenant(r.Context(), tenantID)))
	})
}
