package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/ports"
)

// Compile-time check that AnthropicService implements LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Kamu adalah konsultan bisnis untuk UMKM Indonesia yang menjual lewat Shopee dan TikTok Shop.
Kamu menerima angka profitabilitas sebuah produk yang sudah dihitung (HPP, margin, ROAS, biaya per kanal) beserta daftar rekomendasi.
Tugasmu hanya menceritakan angka-angka itu dengan bahasa sederhana. JANGAN mengubah angka atau menambah rekomendasi baru.
Balas HANYA dengan satu objek JSON valid (tanpa markdown, tanpa blok kode` + " ```json" + `) berstruktur:
{
  "summary": "<ringkasan 2-3 kalimat dalam bahasa Indonesia santai>",
  "next_steps": ["<langkah 1>", "<langkah 2>", "<langkah 3>"],
  "confidence": <angka desimal antara 0.0 dan 1.0>
}

Aturan:
- summary: maksimal 400 karakter, sebut margin dan ROAS minimal secara eksplisit.
- next_steps: 2 sampai 4 langkah, diambil dari rekomendasi yang diberikan.
- confidence: 0.9-1.0 jika datanya lengkap, lebih rendah jika BOM kosong atau harga nol.
- Jangan tulis teks di luar objek JSON.`
)

// AnthropicService implements LLMService against the Anthropic Messages REST
// API. Plain net/http, no vendor SDK.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService builds the adapter.
// An empty apiKey makes calls fail with a descriptive error instead of panicking.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Network timeout of 25 s; the use case also wraps the context
			// in a 10 s WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe captures the first JSON object even when the model wraps it in
// surrounding prose: from the first '{' to the last '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// NarrateInsight sends the computed metrics to the Anthropic API and returns
// the plain-language reading.
func (s *AnthropicService) NarrateInsight(
	ctx context.Context,
	insight *dto.ProductInsightDTO,
) (*dto.AdvisorNarrativeDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY not configured")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildInsightPrompt(insight)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: build HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout or cancellation: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("AI: unmarshal Anthropic response: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("AI: model returned an empty response")
	}

	rawText := anthResp.Content[0].Text

	// Tolerant parse: extract just the JSON block even when the model adds
	// extra prose or markdown around it.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no valid JSON found in model response (response: %s)", rawText)
	}

	var narrative llmNarrativePayload
	if err := json.Unmarshal([]byte(cleanJSON), &narrative); err != nil {
		return nil, fmt.Errorf("AI: parse narrative JSON: %w (extracted JSON: %s)", err, cleanJSON)
	}

	return toNarrativeDTO(narrative), nil
}

// extractJSON pulls the first well-formed JSON object out of free text.
// Two steps: strip markdown code fences, then regex the first { ... } block.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
