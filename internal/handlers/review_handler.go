package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const persistenceWarning = "セッションの進捗をこの端末に保存できませんでした。別の端末からの再開は引き続き可能です。"

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

func (h *ReviewHandler) sessionKey(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (model.SessionKey, bool) {
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return model.SessionKey{}, false
	}
	key, err := model.NewSessionKey(tenantID, chi.URLParam(r, "session_key"))
	if err != nil {
		logger.Warn("Invalid session key in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_keyの形式が正しくありません。", "session_key", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return model.SessionKey{}, false
	}
	return key, true
}

// StartSession は保存済みの未完了セッションを再開するか、新しく開始します。
// ボディは省略可能で、省略時は設定の件数を使う。
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "StartSession")

	key, ok := h.sessionKey(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_key", key.String()))

	var req model.StartSessionRequest
	if r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0 {
		if err := webutil.DecodeAndValidate(r, &req); err != nil {
			logger.Warn("Invalid start session request", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, err)
			return
		}
	}

	session, err := h.service.ResumeOrStartSession(r.Context(), key, req.MaxCards)
	if err != nil {
		if session != nil && errors.Is(err, model.ErrPersistenceWrite) {
			logger.Warn("Session started without local persistence", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusOK, model.ReviewResponse{Session: session, Warning: persistenceWarning}, logger)
			return
		}
		logger.Error("Error starting review session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review session ready", slog.Int("cards", len(session.Cards)), slog.Int("current_index", session.CurrentIndex))
	webutil.RespondWithJSON(w, http.StatusOK, model.ReviewResponse{Session: session}, logger)
}

// SubmitReview は1枚分の回答を受け付け、進んだセッションを返します
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "SubmitReview")

	key, ok := h.sessionKey(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_key", key.String()))

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid review request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	// validator で uuid 形式はチェック済み
	cardID := uuid.MustParse(req.CardID)
	logger = logger.With(slog.String("card_id", cardID.String()))

	session, err := h.service.LoadSession(r.Context(), key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Review submitted for unknown session")
		}
		webutil.HandleError(w, logger, err)
		return
	}

	updated, err := h.service.ProcessReview(r.Context(), key, session, cardID, *req.Rating)
	if err != nil {
		if updated != nil && errors.Is(err, model.ErrPersistenceWrite) {
			logger.Warn("Review applied without local session persistence", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusOK, model.ReviewResponse{Session: updated, Warning: persistenceWarning}, logger)
			return
		}
		if webutil.MapErrorToStatusCode(err) >= http.StatusInternalServerError {
			logger.Error("Error processing review", slog.Any("error", err))
		} else {
			logger.Info("Review rejected", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review processed", slog.Int("rating", *req.Rating), slog.Int("current_index", updated.CurrentIndex))
	webutil.RespondWithJSON(w, http.StatusOK, model.ReviewResponse{Session: updated}, logger)
}

// CompleteSession はセッションを終了して保存先から消します。無いセッションでも成功とする。
func (h *ReviewHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "CompleteSession")

	key, ok := h.sessionKey(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_key", key.String()))

	session, err := h.service.LoadSession(r.Context(), key)
	if err != nil && !errors.Is(err, model.ErrSessionNotFound) {
		logger.Error("Error loading session for completion", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.CompleteSession(r.Context(), key, session); err != nil {
		logger.Error("Error completing session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats はテナントの学習統計を返します
func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "GetStats")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error computing stats", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
