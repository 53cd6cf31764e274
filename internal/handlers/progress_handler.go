// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"tabebui/internal/model"
	"tabebui/internal/service"
	"tabebui/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetUserProgress は全動物の制覇進捗を返す
func (h *ProgressHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	h.respondProgress(w, r, h.logger.With(slog.String("handler", "GetUserProgress")), nil)
}

// GetUserProgressByType は指定した動物の制覇進捗をカテゴリ別の集計つきで返す
func (h *ProgressHandler) GetUserProgressByType(w http.ResponseWriter, r *http.Request) {
	animalType := model.AnimalType(chi.URLParam(r, "animal_type"))
	logger := h.logger.With(slog.String("handler", "GetUserProgressByType"), slog.String("animal_type", string(animalType)))
	h.respondProgress(w, r, logger, &animalType)
}

func (h *ProgressHandler) respondProgress(w http.ResponseWriter, r *http.Request, logger *slog.Logger, animalType *model.AnimalType) {
	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	report, err := h.service.GetProgress(r.Context(), userID, animalType)
	if err != nil {
		logServiceError(logger, "Error computing progress", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, report, logger)
}

// GetDashboardStats はダッシュボードの集計を返す
func (h *ProgressHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboardStats"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	summary, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		logServiceError(logger, "Error computing dashboard", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
