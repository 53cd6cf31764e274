package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tabebui/internal/model"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini は Google Gemini のプロバイダ
type Gemini struct {
	apiKey string
}

func NewGemini(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey}
}

func (g *Gemini) Chat(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("gemini: api key is not configured (GEMINI_API_KEY)")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	gm := client.GenerativeModel(req.Model)
	gm.SetTemperature(float32(req.Temperature))
	if req.SystemPrompt != "" {
		gm.SystemInstruction = genai.NewUserContent(genai.Text(req.SystemPrompt))
	}

	cs := gm.StartChat()
	cs.History = toGeminiHistory(req.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return responseText(resp)
}

// toGeminiHistory は会話履歴を Gemini の形式にする。assistant は "model" ロールになる
func toGeminiHistory(history []model.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == model.ChatRoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return contents
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini: %w", ErrEmptyResponse)
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini: %w", ErrEmptyResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("unexpected response format from Gemini: %w", ErrEmptyResponse)
	}
	return b.String(), nil
}
