// internal/service/chat_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tabebui/internal/config"
	"tabebui/internal/llm"
	"tabebui/internal/middleware"
	"tabebui/internal/model"

	"github.com/google/uuid"
)

type ChatService interface {
	SendMessage(ctx context.Context, userID uuid.UUID, req *model.ChatRequest) (*model.ChatResponse, error)
}

type chatService struct {
	provider llm.Provider
	progress ProgressService
	cfg      config.ChatConfig
}

func NewChatService(provider llm.Provider, progress ProgressService, cfg config.ChatConfig) ChatService {
	return &chatService{provider: provider, progress: progress, cfg: cfg}
}

// SendMessage はユーザーの制覇状況を添えてメッセージを生成モデルに送る。
// 要約の作成に失敗しても要約なしで続行する。
func (s *chatService) SendMessage(ctx context.Context, userID uuid.UUID, req *model.ChatRequest) (*model.ChatResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("user_id", userID.String()))

	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "メッセージは必須項目です。", "message", model.ErrInvalidInput)
	}

	systemPrompt := s.cfg.SystemPrompt
	if req.SystemPrompt != nil && strings.TrimSpace(*req.SystemPrompt) != "" {
		systemPrompt = *req.SystemPrompt
	}

	contextUsed := false
	digest, ok, err := s.progress.BuildChatContext(ctx, userID)
	switch {
	case err != nil:
		logger.Warn("Chat context unavailable, continuing without it", slog.Any("error", err))
	case ok:
		systemPrompt = systemPrompt + "\n\n" + digest
		contextUsed = true
	}

	history := lastMessages(req.History, s.cfg.HistoryLimit)
	reply, err := s.chatWithRetry(ctx, logger, llm.Request{
		Model:        s.cfg.Model,
		Temperature:  s.cfg.Temperature,
		SystemPrompt: systemPrompt,
		History:      history,
		Message:      req.Message,
	})
	if err != nil {
		return nil, model.NewAppError("UPSTREAM_UNAVAILABLE", "チャットの応答を取得できませんでした。時間をおいて再度お試しください。", "",
			fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err))
	}

	newHistory := make([]model.ChatMessage, 0, len(history)+2)
	newHistory = append(newHistory, history...)
	newHistory = append(newHistory,
		model.ChatMessage{Role: model.ChatRoleUser, Content: req.Message},
		model.ChatMessage{Role: model.ChatRoleAssistant, Content: reply},
	)

	return &model.ChatResponse{
		Reply:       reply,
		History:     lastMessages(newHistory, s.cfg.HistoryLimit),
		ContextUsed: contextUsed,
	}, nil
}

// chatWithRetry は1回ごとにタイムアウトをかけて呼び出し、失敗したら MaxRetries 回まで再試行する。
// 呼び出し元のコンテキストが終了していれば再試行しない。
func (s *chatService) chatWithRetry(ctx context.Context, logger *slog.Logger, req llm.Request) (string, error) {
	attempts := 1 + s.cfg.MaxRetries
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		reply, err := s.chatOnce(ctx, req)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		logger.Warn("Chat provider call failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (s *chatService) chatOnce(ctx context.Context, req llm.Request) (string, error) {
	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultChatTimeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := s.provider.Chat(attemptCtx, req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("chat timed out after %s: %w", timeout, err)
		}
		return "", err
	}
	return reply, nil
}

// lastMessages は末尾の limit 件を返す。limit が0以下なら空
func lastMessages(history []model.ChatMessage, limit int) []model.ChatMessage {
	if limit <= 0 {
		return []model.ChatMessage{}
	}
	if len(history) <= limit {
		return append([]model.ChatMessage{}, history...)
	}
	return append([]model.ChatMessage{}, history[len(history)-limit:]...)
}
