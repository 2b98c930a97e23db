package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/llm"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/service"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/tts"
)

type chatRequest struct {
	Messages []llm.ChatMessage `json:"messages"`
	Message  string            `json:"message"`
}

// PostChat proxies a conversation to the financing assistant. Accepts either
// a full message history or a single message string.
func PostChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messages := req.Messages
	if len(messages) == 0 && req.Message != "" {
		messages = []llm.ChatMessage{{Role: "user", Content: req.Message}}
	}
	if len(messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": service.Chat(messages)})
}

type ttsRequest struct {
	Text string `json:"text" binding:"required"`
}

// PostTextToSpeech converts assistant text to audio. The audio field is empty
// when no voice service is configured.
func PostTextToSpeech(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := tts.Synthesize(req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audio":  audio,
		"format": "audio/mpeg",
	})
}
