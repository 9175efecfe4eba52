package solo

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiClient wraps the generative model used by Solo and the blog AI features.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient connects to the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Ping reports whether the Gemini API is reachable by listing models.
func (g *GeminiClient) Ping(ctx context.Context) error {
	iter := g.client.ListModels(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("gemini unreachable: %w", err)
	}
	return nil
}

func (g *GeminiClient) model(system string, temperature float32, maxTokens int32) *genai.GenerativeModel {
	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	return model
}

// StreamChat sends a chat turn with prior history and invokes onChunk for each
// piece of generated text as it arrives.
func (g *GeminiClient) StreamChat(ctx context.Context, history []ChatTurn, message string, onChunk func(string) error) error {
	model := g.model(soloSystemPrompt, 0.8, 1500)
	chat := model.StartChat()

	for _, turn := range history {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	iter := chat.SendMessageStream(ctx, genai.Text(message))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("gemini stream error: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok && len(text) > 0 {
					if err := onChunk(string(text)); err != nil {
						return err
					}
				}
			}
		}
	}
}

// BlogAssist generates a writing suggestion for the admin editor.
func (g *GeminiClient) BlogAssist(ctx context.Context, instruction string) (string, error) {
	model := g.model(blogAssistPrompt, 0.3, 400)
	resp, err := model.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return cleanAssistOutput(collectText(resp)), nil
}

// GenerateOverview produces a short plain-text summary of an article.
// The input is stripped of HTML and truncated before being sent.
func (g *GeminiClient) GenerateOverview(ctx context.Context, title, content string) (string, error) {
	text := stripHTML(content)
	if len(text) > 3000 {
		text = text[:3000]
	}
	model := g.model("", 0.7, 200)
	resp, err := model.GenerateContent(ctx, genai.Text(overviewPrompt+title+"\n\n"+text))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return strings.TrimSpace(collectText(resp)), nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
