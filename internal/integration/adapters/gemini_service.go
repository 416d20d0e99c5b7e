package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// GeminiService implements the ReceiptScanner using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Scan extracts a transaction draft from a receipt image.
func (s *GeminiService) Scan(ctx context.Context, image []byte, mimeType string) (*entity.ReceiptDraft, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	format := geminiImageFormat(mimeType)

	resp, err := model.GenerateContent(ctx,
		genai.Text(scanPrompt),
		genai.ImageData(format, image),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	draft, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return draft, nil
}

const scanPrompt = `You are a receipt reading assistant. Analyze the attached receipt image and extract:
1. The total amount paid (a positive decimal number, no currency symbol)
2. A short description of the purchase (store name or a summary of what was bought)

Respond with a single JSON object:
{
  "amount": 12.34 or null if unreadable,
  "description": "string, empty if unreadable"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`

// geminiReceipt represents the raw response from Gemini.
type geminiReceipt struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

// parseResponse parses the Gemini response into a ReceiptDraft.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*entity.ReceiptDraft, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiReceipt
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	draft := &entity.ReceiptDraft{
		Description: strings.TrimSpace(raw.Description),
	}
	if raw.Amount != nil {
		amount := decimal.NewFromFloat(*raw.Amount)
		draft.Amount = &amount
	}

	return draft, nil
}

// geminiImageFormat maps a MIME type to the format string genai expects.
func geminiImageFormat(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	default:
		return "jpeg"
	}
}

var _ adapter.ReceiptScanner = (*GeminiService)(nil)
