// internal/handlers/part_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"tabebui/internal/model"
	"tabebui/internal/service"
	"tabebui/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type PartHandler struct {
	service service.PartService
	logger  *slog.Logger
}

func NewPartHandler(s service.PartService, logger *slog.Logger) *PartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PartHandler{
		service: s,
		logger:  logger,
	}
}

// GetAnimalParts は部位マスターを返す。animal_type, part_category で絞り込める
func (h *PartHandler) GetAnimalParts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAnimalParts"))

	filter := model.PartFilter{}
	if v := optionalQuery(r, "animal_type"); v != nil {
		t := model.AnimalType(*v)
		filter.AnimalType = &t
	}
	if v := optionalQuery(r, "part_category"); v != nil {
		c := model.PartCategory(*v)
		filter.PartCategory = &c
	}
	h.respondParts(w, r, logger, filter)
}

// GetAnimalPartsByType は指定した動物の部位を返す
func (h *PartHandler) GetAnimalPartsByType(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAnimalPartsByType"))

	animalType := model.AnimalType(chi.URLParam(r, "animal_type"))
	filter := model.PartFilter{AnimalType: &animalType}
	if v := optionalQuery(r, "part_category"); v != nil {
		c := model.PartCategory(*v)
		filter.PartCategory = &c
	}
	h.respondParts(w, r, logger.With(slog.String("animal_type", string(animalType))), filter)
}

func (h *PartHandler) respondParts(w http.ResponseWriter, r *http.Request, logger *slog.Logger, filter model.PartFilter) {
	parts, err := h.service.ListParts(r.Context(), filter)
	if err != nil {
		logServiceError(logger, "Error listing animal parts", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if parts == nil {
		parts = []model.AnimalPart{}
	}
	logger.Debug("Animal parts listed", slog.Int("count", len(parts)))
	webutil.RespondWithJSON(w, http.StatusOK, parts, logger)
}
