// internal/handlers/common.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"tabebui/internal/middleware"
	"tabebui/internal/model"
	"tabebui/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// requireUserID はコンテキストからユーザーIDを取り出す。取れなければエラーレスポンスを書いて false を返す
func requireUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("User context missing", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

// decodeAndValidate はボディをデコードし、validate タグで検証する。
// 失敗した場合はエラーレスポンスを書いて false を返す
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			// バリデーションライブラリ自体のエラー
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}

// optionalQuery は空文字なら nil を返す
func optionalQuery(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

// logServiceError は 5xx になるエラーだけ ERROR で残す
func logServiceError(logger *slog.Logger, msg string, err error) {
	if webutil.MapErrorToStatusCode(err) >= http.StatusInternalServerError {
		logger.Error(msg, slog.Any("error", err))
		return
	}
	logger.Info(msg, slog.Any("error", err))
}
