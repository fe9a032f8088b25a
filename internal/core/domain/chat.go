package domain

import "time"

// ChatRole mirrors the roles of an OpenAI-style chat completion API.
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn in an assistant conversation.
type ChatMessage struct {
	Role    ChatRole  `json:"role" bson:"role"`
	Content string    `json:"content" bson:"content"`
	At      time.Time `json:"at,omitempty" bson:"at,omitempty"`
}

// ChatTopic selects the system prompt the assistant answers under.
type ChatTopic struct {
	Nombre   string
	Contexto string
}

// ChatTopics are the store assistant's available contexts, keyed by the
// tematica field of the chat request.
var ChatTopics = map[string]ChatTopic{
	"GENERAL": {
		Nombre: "Consultas generales",
		Contexto: "Eres el asistente virtual de Gamer Once, Gamer Always, una tienda online de productos gaming. " +
			"Ayudas a los clientes con consultas generales sobre la tienda, envíos, pagos y devoluciones.",
	},
	"PRODUCTOS": {
		Nombre: "Asesoramiento de productos",
		Contexto: "Eres el asistente virtual de Gamer Once, Gamer Always. Asesoras a los clientes sobre el catálogo: " +
			"periféricos, componentes, consolas y accesorios gaming, comparando opciones según presupuesto y uso.",
	},
	"SOPORTE": {
		Nombre: "Soporte postventa",
		Contexto: "Eres el asistente virtual de Gamer Once, Gamer Always. Ayudas con problemas postventa: " +
			"estado de órdenes, garantías y reclamos, siempre con tono empático.",
	},
}

// ChatUsage is the token accounting reported by the provider.
type ChatUsage struct {
	PromptTokens     int `json:"tokens_prompt"`
	CompletionTokens int `json:"tokens_completion"`
	TotalTokens      int `json:"tokens_total"`
}

// Conversation is a stored chat transcript (document store, not relational).
type Conversation struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Tematica  string        `json:"tematica" bson:"tematica"`
	Messages  []ChatMessage `json:"messages" bson:"messages"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
