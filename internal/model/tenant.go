// internal/model/tenant.go
package model

// ContextKey はリクエストコンテキストに値を格納するためのキー型
type ContextKey string

const (
	// TenantIDKey は認証済みテナント (利用者) の ID を格納するキー
	TenantIDKey ContextKey = "tenantID"
)
