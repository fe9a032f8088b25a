package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
	"github.com/gameronce/commerce-api/internal/metrics"
)

// historyWindow caps how many prior turns are replayed to the provider.
const historyWindow = 10

// ChatService answers store-assistant messages through the configured LLM
// provider and appends each exchange to the transcript store.
type ChatService struct {
	provider      ports.ChatProvider
	conversations ports.ConversationRepository
	logger        zerolog.Logger
}

// NewChatService wires the assistant. conversations may be nil when no
// transcript store is configured; exchanges are then not persisted.
func NewChatService(provider ports.ChatProvider, conversations ports.ConversationRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{provider: provider, conversations: conversations, logger: logger}
}

// Process runs one assistant turn: topic prompt + bounded history + the new
// message, in that order.
func (s *ChatService) Process(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error) {
	if strings.TrimSpace(in.Mensaje) == "" {
		return nil, domain.NewValidationError("El mensaje es requerido")
	}
	if in.Tematica == "" {
		in.Tematica = "GENERAL"
	}
	topic, ok := domain.ChatTopics[in.Tematica]
	if !ok {
		return nil, domain.NewValidationError("Temática no válida. Temáticas disponibles: " + availableTopics())
	}

	messages := []domain.ChatMessage{{
		Role: domain.ChatRoleSystem,
		Content: topic.Contexto + "\nInstrucciones adicionales:\n" +
			"- Responde siempre en español\n" +
			"- Mantén las respuestas concisas pero informativas\n" +
			"- Si no sabes algo específico sobre un producto, sugiere contactar al equipo de ventas\n" +
			"- Si el usuario pregunta sobre algo fuera del contexto gaming/tienda, redirige amablemente al tema",
	}}

	history := in.Historial
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		if turn.Usuario != "" {
			messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: turn.Usuario})
		}
		if turn.Asistente != "" {
			messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleAssistant, Content: turn.Asistente})
		}
	}
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: in.Mensaje})

	reply, usage, err := s.provider.Complete(ctx, messages)
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrChatUnavailable, err)
	}
	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()

	s.persist(ctx, in.Tematica, in.Mensaje, reply)

	return &ports.ChatResult{
		Respuesta: reply,
		Tematica:  topic.Nombre,
		Usage:     usage,
	}, nil
}

// persist appends the exchange to the transcript store. Failures are logged,
// never surfaced: losing a transcript must not fail the chat.
func (s *ChatService) persist(ctx context.Context, tematica, mensaje, respuesta string) {
	if s.conversations == nil {
		return
	}
	now := time.Now().UTC()
	_, err := s.conversations.Append(ctx, &domain.Conversation{
		Tematica: tematica,
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Content: mensaje, At: now},
			{Role: domain.ChatRoleAssistant, Content: respuesta, At: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to store chat transcript")
	}
}

func availableTopics() string {
	keys := make([]string, 0, len(domain.ChatTopics))
	for k := range domain.ChatTopics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
