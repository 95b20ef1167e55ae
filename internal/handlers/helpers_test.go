package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_vocab_srs/internal/handlers"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockSet struct {
	review *mocks.ReviewService
	card   *mocks.CardService
}

// newMockSetRouter は開発用認証を通した /api/v1 ルーターとサービスのモックを作ります
func newMockSetRouter(t *testing.T) (http.Handler, *mockSet) {
	t.Helper()
	m := &mockSet{
		review: mocks.NewReviewService(t),
		card:   mocks.NewCardService(t),
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.DevTenantContextMiddleware)
		handlers.RegisterRoutes(r,
			handlers.NewReviewHandler(m.review, discardLogger),
			handlers.NewCardHandler(m.card, discardLogger),
		)
	})
	return r, m
}

// doRequest は body を JSON にしてリクエストを送ります。body が nil ならボディなし。
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}, tenantID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != nil {
		req.Header.Set("X-Tenant-ID", tenantID.String())
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func intPtr(v int) *int { return &v }
