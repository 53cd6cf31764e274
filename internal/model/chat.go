// internal/model/chat.go
package model

// 会話のロール
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage は会話履歴の1件
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

// チャット送信リクエストDTO
type ChatRequest struct {
	Message      string        `json:"message" validate:"required,max=2000"`
	History      []ChatMessage `json:"history,omitempty" validate:"omitempty,max=100,dive"`
	SystemPrompt *string       `json:"system_prompt,omitempty" validate:"omitempty,max=4000"`
}

// チャット送信レスポンスDTO
type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`

	// 制覇状況の要約をプロンプトに含めたか
	ContextUsed bool `json:"context_used"`
}
