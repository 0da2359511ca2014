package services

import "strings"

// TextGenerator is the generative-AI side of the assistant proxy.
// utils.GeminiClient is the production implementation.
type TextGenerator interface {
	GenerateText(prompt string) (string, error)
}

// AssistantService forwards a prompt to the text API; one round trip, no
// conversation state kept on this side.
type AssistantService struct {
	Gen TextGenerator
}

func NewAssistantService(gen TextGenerator) *AssistantService {
	return &AssistantService{Gen: gen}
}

func (s *AssistantService) Reply(prompt string) (string, error) {
	return s.Gen.GenerateText(strings.TrimSpace(prompt))
}
