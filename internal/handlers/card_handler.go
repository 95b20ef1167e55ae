package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/srs"
	"go_4_vocab_srs/internal/webutil"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// PostCard は新しいカードを作成するためのハンドラ
func (h *CardHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "PostCard")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	var req model.PostCardRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid card request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.CreateCard(r.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Card term already exists", slog.String("term", req.Term))
		} else {
			logger.Error("Error creating card in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card posted successfully", slog.String("card_id", card.CardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// GetCards はカード一覧を返します。?status= で学習段階を絞り込める。
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "GetCards")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	var status *srs.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := srs.Status(raw)
		if !s.IsValid() {
			logger.Warn("Invalid status filter", slog.String("status", raw))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "statusはnew, learning, review, matureのいずれかで指定してください。", "status", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		status = &s
	}

	cards, err := h.service.ListCards(r.Context(), tenantID, status)
	if err != nil {
		logger.Error("Error listing cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.VocabularyCard{}
	}
	logger.Info("Cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// GetCard は1枚のカードを返します
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "GetCard")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	cardID, ok := uuidURLParam(w, r, logger, "card_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	card, err := h.service.GetCard(r.Context(), tenantID, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting card from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "DeleteCard")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	cardID, ok := uuidURLParam(w, r, logger, "card_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	if err := h.service.DeleteCard(r.Context(), tenantID, cardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card to delete not found", slog.Any("error", err))
		} else {
			logger.Error("Error deleting card in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
