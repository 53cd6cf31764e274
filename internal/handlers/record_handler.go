// internal/handlers/record_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"tabebui/internal/model"
	"tabebui/internal/service"
	"tabebui/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// defaultPerPage はセッション一覧の既定件数
const defaultPerPage = 20

type RecordHandler struct {
	service service.RecordService
	logger  *slog.Logger
}

func NewRecordHandler(s service.RecordService, logger *slog.Logger) *RecordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordHandler{
		service: s,
		logger:  logger,
	}
}

// PostEatingRecord は1回の食事 (セッション) と部位ごとの記録を作成する
func (h *RecordHandler) PostEatingRecord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEatingRecord"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateRecordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.RecordSession(r.Context(), userID, &req)
	if err != nil {
		logServiceError(logger, "Error recording eating session", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Eating session created", slog.Int("session_id", resp.SessionID))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// GetEatingSessions はセッション履歴を新しい順に返す
func (h *RecordHandler) GetEatingSessions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEatingSessions"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	page, err := webutil.QueryInt(r, "page", 1)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	perPage, err := webutil.QueryInt(r, "per_page", defaultPerPage)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	list, err := h.service.ListSessions(r.Context(), userID, page, perPage)
	if err != nil {
		logServiceError(logger, "Error listing eating sessions", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

// GetEatingSession はセッション1件を部位つきで返す
func (h *RecordHandler) GetEatingSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEatingSession"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := strconv.Atoi(sessionIDStr)
	if err != nil || sessionID <= 0 {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_idの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("session_id", sessionID))

	detail, err := h.service.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		logServiceError(logger, "Error getting eating session", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}
