package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ccsbot/internal/matcher"
	"ccsbot/internal/nlp"
	"ccsbot/internal/utils"
)

// Answerer e o que o servico precisa do matcher.
type Answerer interface {
	Match(query string) matcher.Result
}

// Sender entrega as respostas ao usuario (WhatsApp).
type Sender interface {
	SendMessage(ctx context.Context, number string, message string) error
}

// ReplyKind classifica a resposta do servico.
type ReplyKind int

const (
	ReplyAnswer ReplyKind = iota
	ReplyRepeat
	ReplyMenu
	ReplyExit
)

// Reply e o que deve ser mostrado ao usuario para uma mensagem.
type Reply struct {
	Kind     ReplyKind
	Messages []string
	// Result so e preenchido quando Kind == ReplyAnswer.
	Result matcher.Result
}

// MessageService trata os comandos da conversa e repassa as perguntas ao matcher.
type MessageService struct {
	answerer Answerer
	sender   Sender
	logger   *zap.Logger
}

// NewMessageService cria o servico. sender pode ser nil quando so Respond e usado.
func NewMessageService(answerer Answerer, sender Sender, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{answerer: answerer, sender: sender, logger: logger}
}

// Respond decide a resposta para uma linha digitada pelo usuario.
func (s *MessageService) Respond(text string) Reply {
	if strings.TrimSpace(text) == "" {
		return Reply{Kind: ReplyRepeat, Messages: []string{utils.RepeatMessage}}
	}

	cmd := nlp.Normalize(text)
	switch ParseCommand(cmd) {
	case CommandExit:
		return Reply{Kind: ReplyExit, Messages: []string{utils.GoodbyeMessage}}
	case CommandMenu:
		return Reply{Kind: ReplyMenu, Messages: []string{utils.BuildMenu()}}
	}

	res := s.answerer.Match(text)
	reply := Reply{Kind: ReplyAnswer, Messages: []string{res.Answer}, Result: res}
	if res.Kind == matcher.KindFallback {
		if suggestion, ok := SuggestCommand(cmd); ok {
			reply.Messages = append(reply.Messages, utils.BuildSuggestion(suggestion))
		}
		reply.Messages = append(reply.Messages, utils.ExamplesHint)
	}
	return reply
}

// ProcessMessage responde uma mensagem recebida pelo WhatsApp.
func (s *MessageService) ProcessMessage(ctx context.Context, number string, message string, name string) error {
	s.logger.Info("processando mensagem",
		zap.String("name", name),
		zap.String("number", number),
		zap.String("message", message))

	reply := s.Respond(message)
	messages := reply.Messages
	if reply.Kind == ReplyMenu {
		messages = []string{utils.BuildMainMenu(name)}
	}

	if reply.Kind == ReplyAnswer {
		s.logger.Info("resposta escolhida",
			zap.String("number", number),
			zap.Stringer("kind", reply.Result.Kind),
			zap.String("entry_id", reply.Result.EntryID),
			zap.Float64("score", reply.Result.Score))
	}

	for _, msg := range messages {
		if err := s.sender.SendMessage(ctx, number, msg); err != nil {
			s.logger.Error("erro ao enviar resposta", zap.String("number", number), zap.Error(err))
			return err
		}
	}
	return nil
}
