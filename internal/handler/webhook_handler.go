package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// WebhookPayload e o evento enviado pela WaSenderAPI; so os campos usados sao lidos.
type WebhookPayload struct {
	Event     string `json:"event"`
	SessionID string `json:"sessionId"`
	Timestamp int64  `json:"timestamp"`
	Data      struct {
		Messages struct {
			Key struct {
				RemoteJid string `json:"remoteJid"`
				FromMe    bool   `json:"fromMe"`
				ID        string `json:"id"`
			} `json:"key"`
			MessageTimestamp int64  `json:"messageTimestamp"`
			PushName         string `json:"pushName"`
			Broadcast        bool   `json:"broadcast"`
			Message          struct {
				Conversation string `json:"conversation"`
			} `json:"message"`
		} `json:"messages"`
	} `json:"data"`
}

// MessageProcessor responde uma mensagem recebida pelo WhatsApp.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, number string, message string, name string) error
}

// WebhookHandler recebe os eventos de mensagem da WaSenderAPI.
type WebhookHandler struct {
	processor MessageProcessor
	logger    *zap.Logger
}

// NewWebhookHandler cria o handler do webhook que repassa as mensagens ao processor.
func NewWebhookHandler(processor MessageProcessor, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{processor: processor, logger: logger}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Metodo nao permitido", http.StatusMethodNotAllowed)
		return
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Erro ao ler body", http.StatusInternalServerError)
		return
	}

	var payload WebhookPayload
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		http.Error(w, "Erro ao decodificar a mensagem", http.StatusBadRequest)
		return
	}

	msg := payload.Data.Messages
	if msg.Key.FromMe || msg.Key.RemoteJid == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	name := msg.PushName
	number := strings.Replace(msg.Key.RemoteJid, "@s.whatsapp.net", "", 1)
	text := msg.Message.Conversation

	if err := h.processor.ProcessMessage(r.Context(), number, text, name); err != nil {
		h.logger.Warn("resposta nao entregue", zap.String("number", number), zap.Error(err))
		http.Error(w, "Erro ao enviar resposta", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusOK)
}
