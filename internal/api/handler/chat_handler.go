package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// ChatHandler exposes the storefront assistant.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	Mensaje   string           `json:"mensaje"`
	Tematica  string           `json:"tematica"`
	Historial []ports.ChatTurn `json:"historial"`
}

type chatUsageResponse struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatResponse struct {
	Respuesta string            `json:"respuesta"`
	Tematica  string            `json:"tematica"`
	Usage     chatUsageResponse `json:"usage"`
}

// Message runs one assistant turn.
//
// @Summary      Send a message to the assistant
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message, topic and prior turns"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /chatbot/mensaje [post]
func (h *ChatHandler) Message(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	result, err := h.service.Process(c.Request().Context(), ports.ChatInput{
		Mensaje:   req.Mensaje,
		Tematica:  req.Tematica,
		Historial: req.Historial,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, chatResponse{
		Respuesta: result.Respuesta,
		Tematica:  result.Tematica,
		Usage: chatUsageResponse{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
	})
}
