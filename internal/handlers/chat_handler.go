// internal/handlers/chat_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"tabebui/internal/model"
	"tabebui/internal/service"
	"tabebui/internal/webutil"
)

type ChatHandler struct {
	service service.ChatService
	logger  *slog.Logger
}

func NewChatHandler(s service.ChatService, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		service: s,
		logger:  logger,
	}
}

// PostChatMessage はユーザーの制覇状況を踏まえたチャット応答を返す
func (h *ChatHandler) PostChatMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostChatMessage"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.ChatRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SendMessage(r.Context(), userID, &req)
	if err != nil {
		logServiceError(logger, "Error sending chat message", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Chat reply generated", slog.Bool("context_used", resp.ContextUsed), slog.Int("history", len(resp.History)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
