package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsbot/internal/knowledge"
	"ccsbot/internal/matcher"
	"ccsbot/internal/utils"
)

type sentMessage struct {
	number string
	text   string
}

type fakeSender struct {
	sent []sentMessage
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, number string, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{number: number, text: message})
	return nil
}

func newService(t *testing.T, sender Sender) *MessageService {
	t.Helper()
	m, err := matcher.New(knowledge.Default())
	require.NoError(t, err)
	return NewMessageService(m, sender, nil)
}

func TestRespond_EmptyLineAsksToRepeat(t *testing.T) {
	s := newService(t, nil)

	for _, in := range []string{"", "   ", "\t"} {
		reply := s.Respond(in)
		assert.Equal(t, ReplyRepeat, reply.Kind)
		assert.Equal(t, []string{utils.RepeatMessage}, reply.Messages)
	}
}

func TestRespond_PunctuationOnlyReachesMatcher(t *testing.T) {
	s := newService(t, nil)

	reply := s.Respond("?!")
	assert.Equal(t, ReplyAnswer, reply.Kind)
	assert.Equal(t, matcher.KindNoInput, reply.Result.Kind)
	assert.Equal(t, []string{matcher.DefaultNoInputPrompt}, reply.Messages)
}

func TestRespond_Commands(t *testing.T) {
	s := newService(t, nil)

	reply := s.Respond("Sair")
	assert.Equal(t, ReplyExit, reply.Kind)
	assert.Equal(t, []string{utils.GoodbyeMessage}, reply.Messages)

	reply = s.Respond("opções")
	assert.Equal(t, ReplyMenu, reply.Kind)
	assert.Equal(t, []string{utils.BuildMenu()}, reply.Messages)
}

func TestRespond_Answer(t *testing.T) {
	s := newService(t, nil)

	reply := s.Respond("como marcar férias?")
	assert.Equal(t, ReplyAnswer, reply.Kind)
	assert.Equal(t, "ferias_basico", reply.Result.EntryID)
	require.Len(t, reply.Messages, 1)
	assert.Contains(t, reply.Messages[0], "FÉRIAS")
}

func TestRespond_FallbackAddsHints(t *testing.T) {
	s := newService(t, nil)

	reply := s.Respond("xyzzy plugh quux")
	assert.Equal(t, matcher.KindFallback, reply.Result.Kind)
	require.Len(t, reply.Messages, 2)
	assert.Contains(t, reply.Messages[0], "Não encontrei")
	assert.Equal(t, utils.ExamplesHint, reply.Messages[1])

	reply = s.Respond("mneu")
	require.Len(t, reply.Messages, 3)
	assert.Equal(t, "Você quis dizer 'menu'?", reply.Messages[1])
}

func TestProcessMessage(t *testing.T) {
	sender := &fakeSender{}
	s := newService(t, sender)

	require.NoError(t, s.ProcessMessage(context.Background(), "5583", "plano de trabalho", "Ana"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "5583", sender.sent[0].number)
	assert.Contains(t, sender.sent[0].text, "PLANO DE TRABALHO")
}

func TestProcessMessage_MenuGreetsByName(t *testing.T) {
	sender := &fakeSender{}
	s := newService(t, sender)

	require.NoError(t, s.ProcessMessage(context.Background(), "5583", "menu", "Ana"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, utils.BuildMainMenu("Ana"), sender.sent[0].text)
}

func TestProcessMessage_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("fora do ar")}
	s := newService(t, sender)

	err := s.ProcessMessage(context.Background(), "5583", "ferias", "Ana")
	assert.ErrorContains(t, err, "fora do ar")
}
