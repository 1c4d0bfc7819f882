package usecases

import (
	"fmt"
	"io"
	"strings"

	"github.com/marqueshop/recommender/internal/domain"
	"go.yaml.in/yaml/v3"
)

// decodePromptMessages parses a YAML prompt file into chat messages.
func decodePromptMessages(r io.Reader) ([]domain.LLMChatMessage, error) {
	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(r).Decode(&messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// interpolatePromptMessages fills indexed placeholders in every message
// that carries them. Messages without placeholders pass through as-is.
func interpolatePromptMessages(messages []domain.LLMChatMessage, args ...any) []domain.LLMChatMessage {
	for i, msg := range messages {
		if strings.Contains(msg.Content, "%[") {
			messages[i].Content = fmt.Sprintf(msg.Content, args...)
		}
	}
	return messages
}
