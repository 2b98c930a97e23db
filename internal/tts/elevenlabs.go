package tts

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	elevenAPIKey string
	voiceID      string
)

func init() {
	elevenAPIKey = os.Getenv("ELEVENLABS_API_KEY")
	voiceID = os.Getenv("ELEVENLABS_VOICE_ID")
	if voiceID == "" {
		// "Rachel", the ElevenLabs default voice.
		voiceID = "21m00Tcm4TlvDq8ikWAM"
	}
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Enabled reports whether an API key is configured.
func Enabled() bool {
	return elevenAPIKey != ""
}

// Synthesize converts text to MP3 audio and returns it base64 encoded.
// Returns an empty string without error when no API key is configured, so
// voice output degrades to text-only.
func Synthesize(text string) (string, error) {
	if elevenAPIKey == "" {
		return "", nil
	}
	if text == "" {
		return "", fmt.Errorf("empty text")
	}

	req := ttsRequest{
		Text:    text,
		ModelID: "eleven_monolingual_v1",
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %v", err)
	}

	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s", voiceID)
	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("build request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("xi-api-key", elevenAPIKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	return base64.StdEncoding.EncodeToString(body), nil
}
