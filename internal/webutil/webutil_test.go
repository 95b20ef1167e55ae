package webutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_vocab_srs/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "NotFound", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "カードなし", err: model.ErrItemNotFound, want: http.StatusNotFound},
		{name: "セッションなし", err: model.ErrSessionNotFound, want: http.StatusNotFound},
		{name: "入力不正", err: model.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "評価値不正", err: fmt.Errorf("wrap: %w", model.ErrInvalidRating), want: http.StatusBadRequest},
		{name: "完了済み", err: model.ErrSessionCompleted, want: http.StatusConflict},
		{name: "権限なし", err: model.ErrForbidden, want: http.StatusForbidden},
		{name: "AppError の中身で判定", err: model.NewAppError("X", "x", "", model.ErrConflict), want: http.StatusConflict},
		{name: "未知のエラー", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("評価値エラーは INVALID_RATING", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, logger, fmt.Errorf("%w: %w", model.ErrInvalidInput, model.ErrInvalidRating))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_RATING", resp.Error.Code)
		assert.Equal(t, "rating", resp.Error.Field)
	})

	t.Run("内部エラーは詳細を隠す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, logger, errors.New("dsn=secret"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
	})
}

type sampleRequest struct {
	Term     string `json:"term" validate:"required,max=5"`
	MaxCards int    `json:"max_cards" validate:"omitempty,min=1,max=200"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{name: "正常", body: `{"term":"apple","max_cards":10}`},
		{name: "必須項目なし", body: `{}`, wantErr: true, wantField: "term", wantMsg: "単語は必須項目です。"},
		{name: "数値の上限", body: `{"term":"a","max_cards":500}`, wantErr: true, wantField: "max_cards", wantMsg: "最大カード数は200以下で指定してください。"},
		{name: "文字数の上限", body: `{"term":"bananas"}`, wantErr: true, wantField: "term", wantMsg: "単語は5文字以下で入力してください。"},
		{name: "不明なフィールド", body: `{"term":"a","extra":1}`, wantErr: true},
		{name: "壊れたJSON", body: `{"term":`, wantErr: true},
		{name: "空ボディ", body: ``, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			var dst sampleRequest
			err := DecodeAndValidate(req, &dst)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, appErr.Detail.Field)
				assert.Equal(t, tt.wantMsg, appErr.Detail.Message)
			}
		})
	}
}
