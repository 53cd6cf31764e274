//go:generate mockery --name Provider --output ./mocks --outpkg mocks --case=underscore
// Package llm はチャットの生成モデルを抽象化する
package llm

import (
	"context"
	"errors"
	"fmt"

	"tabebui/internal/model"
)

// ErrEmptyResponse はモデルが本文を返さなかったときのエラー
var ErrEmptyResponse = errors.New("llm: empty response")

// Request はモデルに送る内容
type Request struct {
	Model        string
	Temperature  float64
	SystemPrompt string
	History      []model.ChatMessage
	Message      string
}

// Provider は生成モデルのクライアント
type Provider interface {
	Chat(ctx context.Context, req Request) (string, error)
}

// Config はプロバイダの生成に必要な設定
type Config struct {
	Provider string
	APIKey   string
}

// New は設定に応じたプロバイダを返す
func New(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "", "gemini":
		return NewGemini(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
