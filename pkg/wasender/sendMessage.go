package wasender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL e o endereco da WaSenderAPI.
const DefaultBaseURL = "https://www.wasenderapi.com"

// Client envia mensagens de WhatsApp pela WaSenderAPI.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configura o Client.
type Option func(*Client)

// WithBaseURL troca o endereco da API (usado em testes e proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient troca o cliente HTTP.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New cria um cliente autenticado com a chave da API.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendMessageRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// SendMessage envia o texto para o numero informado.
func (c *Client) SendMessage(ctx context.Context, number string, message string) error {
	payload, err := json.Marshal(sendMessageRequest{To: number, Text: message})
	if err != nil {
		return fmt.Errorf("erro ao montar mensagem: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/send-message", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar requisicao para WaSender: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar mensagem para WaSender: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("WaSender retornou status nao OK: %s. Detalhes: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}
