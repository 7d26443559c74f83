// Package ai implements the LLMService port over vendor REST APIs.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/ports"
)

// Compile-time check that GeminiService implements LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt fixes the model's role and output contract. With
	// response_mime_type=application/json Gemini returns bare JSON, so no
	// markdown stripping is needed on this path.
	systemPrompt = `Kamu adalah konsultan bisnis untuk UMKM Indonesia yang menjual lewat Shopee dan TikTok Shop.
Kamu menerima angka profitabilitas sebuah produk yang sudah dihitung (HPP, margin, ROAS, biaya per kanal) beserta daftar rekomendasi.
Tugasmu hanya menceritakan angka-angka itu dengan bahasa sederhana. JANGAN mengubah angka atau menambah rekomendasi baru.
Balas HANYA dengan satu objek JSON persis berstruktur:
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

// GeminiService implements LLMService against the Google Gemini REST API.
// Plain net/http, no vendor SDK.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService builds the adapter. model is typically "gemini-1.5-flash".
// An empty apiKey makes calls fail with a descriptive error instead of panicking.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // network timeout; callers also set WithTimeout
		},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" guarantees bare JSON
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// llmNarrativePayload is the JSON we expect back from the model.
type llmNarrativePayload struct {
	Summary    string   `json:"summary"`
	NextSteps  []string `json:"next_steps"`
	Confidence float64  `json:"confidence"`
}

// NarrateInsight sends the computed metrics to Gemini and returns the
// plain-language reading.
func (s *GeminiService) NarrateInsight(
	ctx context.Context,
	insight *dto.ProductInsightDTO,
) (*dto.AdvisorNarrativeDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY not configured")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: buildInsightPrompt(insight)}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // low temperature for stable phrasing
			MaxOutputTokens:  512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: build HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: unmarshal Gemini response: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini returned an empty response")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var narrative llmNarrativePayload
	if err := json.Unmarshal([]byte(rawJSON), &narrative); err != nil {
		return nil, fmt.Errorf("AI: model response is not valid JSON: %w (response: %s)", err, rawJSON)
	}

	return toNarrativeDTO(narrative), nil
}

// toNarrativeDTO clamps confidence to [0, 1] and maps the payload.
func toNarrativeDTO(p llmNarrativePayload) *dto.AdvisorNarrativeDTO {
	confidence := p.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	return &dto.AdvisorNarrativeDTO{
		Summary:    p.Summary,
		NextSteps:  p.NextSteps,
		Confidence: confidence,
	}
}
