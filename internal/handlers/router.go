// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティングに登録するハンドラ一式
type Handlers struct {
	Part     *PartHandler
	Record   *RecordHandler
	Progress *ProgressHandler
	Chat     *ChatHandler
	Health   *HealthHandler
}

// RegisterRoutes は /health と /api/v1 配下のルートを登録する。
// /api/v1 にはユーザー解決のミドルウェア (apiMiddlewares) を適用する
func (h *Handlers) RegisterRoutes(r chi.Router, apiMiddlewares ...func(next http.Handler) http.Handler) {
	if h.Health != nil {
		r.Get("/health", h.Health.GetHealth)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiMiddlewares...)

		r.Route("/animal-parts", func(r chi.Router) {
			r.Get("/", h.Part.GetAnimalParts)
			r.Get("/{animal_type}", h.Part.GetAnimalPartsByType)
		})

		r.Post("/eating-records", h.Record.PostEatingRecord)
		r.Route("/eating-sessions", func(r chi.Router) {
			r.Get("/", h.Record.GetEatingSessions)
			r.Get("/{session_id}", h.Record.GetEatingSession)
		})

		r.Route("/user-progress", func(r chi.Router) {
			r.Get("/", h.Progress.GetUserProgress)
			r.Get("/{animal_type}", h.Progress.GetUserProgressByType)
		})
		r.Get("/dashboard-stats", h.Progress.GetDashboardStats)

		r.Post("/chat/message", h.Chat.PostChatMessage)
	})
}
