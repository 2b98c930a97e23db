package service

import (
	"log"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/llm"
)

const fallbackReply = "I'm having trouble reaching the assistant right now. " +
	"You can still compare lease and finance options with the calculator, " +
	"or book a test drive and ask our staff in person."

// Chat proxies a conversation to the language model with a canned reply when
// the model is unconfigured or failing.
func Chat(messages []llm.ChatMessage) string {
	if !llm.Enabled() {
		return fallbackReply
	}

	reply, err := llm.Chat(messages)
	if err != nil {
		log.Printf("[CHAT] llm call failed: %v", err)
		return fallbackReply
	}
	return reply
}
