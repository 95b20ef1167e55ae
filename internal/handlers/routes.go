package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes はテナント認証済みのルーターに API のルートを登録します
func RegisterRoutes(r chi.Router, review *ReviewHandler, card *CardHandler) {
	r.Route("/sessions/{session_key}", func(r chi.Router) {
		r.Post("/", review.StartSession)
		r.Delete("/", review.CompleteSession)
		r.Post("/reviews", review.SubmitReview)
	})
	r.Get("/stats", review.GetStats)

	r.Route("/cards", func(r chi.Router) {
		r.Post("/", card.PostCard)
		r.Get("/", card.GetCards)
		r.Get("/{card_id}", card.GetCard)
		r.Delete("/{card_id}", card.DeleteCard)
	})
}
