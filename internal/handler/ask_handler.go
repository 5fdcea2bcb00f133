package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"ccsbot/internal/matcher"
)

const maxBodyBytes = 64 << 10

// Answerer e satisfeito por *matcher.Matcher.
type Answerer interface {
	Match(query string) matcher.Result
}

// AskRequest e o corpo esperado em POST /ask.
type AskRequest struct {
	Message string `json:"message"`
}

// AskResponse traz a resposta escolhida e como ela foi encontrada.
type AskResponse struct {
	Answer  string  `json:"answer"`
	Kind    string  `json:"kind"`
	EntryID string  `json:"entry_id,omitempty"`
	Score   float64 `json:"score"`
}

// AskHandler responde uma pergunta avulsa em JSON, sem tratar comandos.
type AskHandler struct {
	answerer Answerer
	logger   *zap.Logger
}

// NewAskHandler cria o handler de /ask a partir de um Answerer.
func NewAskHandler(answerer Answerer, logger *zap.Logger) *AskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskHandler{answerer: answerer, logger: logger}
}

// ServeHTTP aceita apenas POST com JSON e devolve 400 para corpo invalido.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Metodo nao permitido", http.StatusMethodNotAllowed)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Erro ao decodificar a pergunta", http.StatusBadRequest)
		return
	}

	res := h.answerer.Match(req.Message)
	h.logger.Debug("pergunta respondida",
		zap.Stringer("kind", res.Kind),
		zap.String("entry_id", res.EntryID),
		zap.Float64("score", res.Score))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(AskResponse{
		Answer:  res.Answer,
		Kind:    res.Kind.String(),
		EntryID: res.EntryID,
		Score:   res.Score,
	}); err != nil {
		h.logger.Warn("erro ao escrever resposta", zap.Error(err))
	}
}

// NewRouter registra as rotas do servidor HTTP.
func NewRouter(answerer Answerer, processor MessageProcessor, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ask", NewAskHandler(answerer, logger))
	mux.Handle("/webhook", NewWebhookHandler(processor, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	return mux
}
