package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	geminiAPIKey string
	geminiModel  string
)

func init() {
	geminiAPIKey = os.Getenv("GEMINI_API_KEY")
	geminiModel = os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}
}

// GeminiRequest is the generateContent request body.
type GeminiRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// Content is one turn of a conversation.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a text fragment of a turn.
type Part struct {
	Text string `json:"text"`
}

// GeminiResponse is the generateContent response body.
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatMessage is a role/content pair from the chat endpoint.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResaleEstimate is the structured answer expected from the resale prompt.
type ResaleEstimate struct {
	ResaleValue float64 `json:"resale_value"`
}

// Enabled reports whether an API key is configured.
func Enabled() bool {
	return geminiAPIKey != ""
}

const advisorSystemPrompt = `You are a helpful financing advisor for a Toyota dealership. ` +
	`You answer questions about leasing, financing, trade-ins, insurance and vehicle features. ` +
	`Keep answers short and practical. If a question is unrelated to vehicles or financing, ` +
	`politely steer the conversation back.`

// Chat sends a conversation to Gemini and returns the reply text.
func Chat(messages []ChatMessage) (string, error) {
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not configured")
	}

	req := GeminiRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: advisorSystemPrompt}}},
	}
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" || m.Role == "model" {
			role = "model"
		}
		req.Contents = append(req.Contents, Content{
			Role:  role,
			Parts: []Part{{Text: m.Content}},
		})
	}

	return generate(req, 30*time.Second)
}

// PredictResale asks Gemini for a resale estimate. Callers fall back to the
// local depreciation model on any error.
func PredictResale(modelName, trimName string, year int, originalPrice, yearsOwned, totalMileage float64) (float64, error) {
	if geminiAPIKey == "" {
		return 0, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	prompt := fmt.Sprintf(`Estimate the current resale value in USD of this vehicle:

Model: %d Toyota %s %s
Original price: $%.0f
Years owned: %.1f
Total mileage: %.0f miles

Consider typical Toyota depreciation curves, the model's segment and the mileage relative to 12,000 miles per year.

Return JSON only, no other text:
{"resale_value": 12345}`,
		year, modelName, trimName, originalPrice, yearsOwned, totalMileage)

	req := GeminiRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
	}

	result, err := generate(req, 15*time.Second)
	if err != nil {
		return 0, err
	}

	estimate, err := ExtractResaleEstimate(result)
	if err != nil {
		return 0, err
	}

	// Sanity bounds: a resale estimate outside (0, originalPrice] means the
	// model misread the prompt.
	if estimate.ResaleValue <= 0 || estimate.ResaleValue > originalPrice {
		return 0, fmt.Errorf("estimate %.0f out of range", estimate.ResaleValue)
	}

	return estimate.ResaleValue, nil
}

// ExtractResaleEstimate parses the JSON object out of a model reply, which
// may be wrapped in prose or markdown fences.
func ExtractResaleEstimate(result string) (ResaleEstimate, error) {
	var estimate ResaleEstimate
	if err := json.Unmarshal([]byte(result), &estimate); err == nil {
		return estimate, nil
	}

	if start := findJSONStart(result); start >= 0 {
		if end := findJSONEnd(result, start); end > start {
			if err := json.Unmarshal([]byte(result[start:end+1]), &estimate); err == nil {
				return estimate, nil
			}
		}
	}

	return estimate, fmt.Errorf("no JSON object in reply")
}

func generate(req GeminiRequest, timeout time.Duration) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %v", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", geminiModel)
	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("build request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", geminiAPIKey)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %v", err)
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("parse response: %v", err)
	}

	if geminiResp.Error.Message != "" {
		return "", fmt.Errorf("api error: %s", geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

func findJSONStart(s string) int {
	for i, c := range s {
		if c == '{' {
			return i
		}
	}
	return -1
}

func findJSONEnd(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		if s[i] == '{' {
			depth++
		} else if s[i] == '}' {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
