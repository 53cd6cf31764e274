// internal/middleware/user_context.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"tabebui/internal/model"
	"tabebui/internal/webutil"

	"github.com/google/uuid"
)

// UserIDHeader はユーザーを指定するリクエストヘッダー
const UserIDHeader = "X-User-ID"

// UserContextMiddleware はリクエストのユーザーIDをコンテキストに設定します。
// X-User-ID ヘッダー、なければ user_id クエリから読み取り、
// どちらもない場合は defaultUserID を使います。認証は行いません。
func UserContextMiddleware(defaultUserID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				raw = r.URL.Query().Get("user_id")
			}

			userID := defaultUserID
			if raw != "" {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					logger.Warn("Invalid user id", slog.String("user_id", raw))
					appErr := model.NewAppError("INVALID_USER_ID", "ユーザーIDの形式が正しくありません。", "user_id", model.ErrInvalidInput)
					webutil.HandleError(w, logger, appErr)
					return
				}
				userID = parsed
			}

			// 以降のログにユーザーIDを付ける
			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが適用されていない (内部エラー)
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
