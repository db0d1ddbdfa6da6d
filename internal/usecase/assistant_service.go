package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/cochlearspare/backend/internal/domain"
)

// Assistant persona strings. The greeting seeds every new conversation; the
// fallback replaces any failed or empty generation so a raw error never
// reaches the visitor.
const (
	AssistantGreeting = "Hello! I am your Cochlear Expert Assistant. Ask me about compatibility, batteries, or troubleshooting."

	AssistantSystemInstruction = "You are a helpful support agent for an e-commerce store called Cochlear Spare. " +
		"You help people find hearing aid batteries, cables, and accessories. Be concise, friendly, and expert."

	assistantFallback = "I'm having trouble connecting to the hearing database right now. Please try again."
)

// AssistantService runs the chat widget: an append-only per-session message
// history and a single-in-flight call to the text-generation collaborator.
type AssistantService struct {
	generator domain.TextGenerator
}

// NewAssistantService creates an assistant service. A nil generator means no
// credential is configured: submissions still record the user message but no
// network call is ever attempted.
func NewAssistantService(generator domain.TextGenerator) *AssistantService {
	return &AssistantService{generator: generator}
}

// Configured reports whether a text-generation collaborator is wired up
func (s *AssistantService) Configured() bool {
	return s.generator != nil
}

// Submit appends the visitor's message and, when configured, awaits exactly
// one generated reply. While a request is outstanding the session's assistant
// is busy and further submissions are rejected; there is no queueing or
// cancellation. On any failure the fixed fallback is appended instead of the
// error. The returned message is the assistant's reply, or nil when no
// collaborator is configured.
func (s *AssistantService) Submit(ctx context.Context, session *domain.Session, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidRequest
	}

	session.Lock()
	if session.AssistantBusy {
		session.Unlock()
		return nil, domain.ErrAssistantBusy
	}
	session.Messages = append(session.Messages, domain.ChatMessage{Role: domain.ChatRoleUser, Text: text})
	if s.generator == nil {
		// No credential: the turn ends here and the widget stays enabled
		session.Unlock()
		return nil, nil
	}
	session.AssistantBusy = true
	session.Unlock()

	replyText, err := s.generator.Generate(ctx, text)
	if err != nil || strings.TrimSpace(replyText) == "" {
		if err != nil {
			log.Printf("[ASSISTANT] Generation failed for session %s: %v", session.ID, err)
		}
		replyText = assistantFallback
	}

	reply := domain.ChatMessage{Role: domain.ChatRoleAssistant, Text: replyText}

	session.Lock()
	session.Messages = append(session.Messages, reply)
	session.AssistantBusy = false
	session.Unlock()

	return &reply, nil
}

// History returns a snapshot of the conversation in order
func (s *AssistantService) History(session *domain.Session) []domain.ChatMessage {
	session.Lock()
	defer session.Unlock()
	out := make([]domain.ChatMessage, len(session.Messages))
	copy(out, session.Messages)
	return out
}
