package chat

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsbot/internal/knowledge"
	"ccsbot/internal/matcher"
	"ccsbot/internal/service"
	"ccsbot/internal/utils"
)

func runTranscript(t *testing.T, ctx context.Context, input string) string {
	t.Helper()
	m, err := matcher.New(knowledge.Default())
	require.NoError(t, err)

	var out bytes.Buffer
	loop := NewLoop(service.NewMessageService(m, nil, nil), strings.NewReader(input), &out)
	require.NoError(t, loop.Run(ctx))
	return out.String()
}

func TestRun_Conversation(t *testing.T) {
	out := runTranscript(t, context.Background(), "como marcar ferias\n\nmenu\nxyzzy\nsair\nplano\n")

	assert.True(t, strings.HasPrefix(out, utils.BuildBanner()))
	assert.Contains(t, out, "Bot: FÉRIAS — Informações básicas:")
	assert.Contains(t, out, "Bot: "+utils.RepeatMessage)
	assert.Equal(t, 2, strings.Count(out, "=== MENU DE TÓPICOS ==="))
	assert.Contains(t, out, "Bot: Não encontrei")
	assert.Contains(t, out, "Bot: "+utils.ExamplesHint)
	assert.True(t, strings.HasSuffix(out, "Bot: Até logo!\n"))
	assert.NotContains(t, out, "PLANO DE TRABALHO —", "input after sair must not be answered")
}

func TestRun_EOF(t *testing.T) {
	out := runTranscript(t, context.Background(), "licença")

	assert.Contains(t, out, "Bot: AFASTAMENTOS")
	assert.True(t, strings.HasSuffix(out, "Você: \nBot: Até logo!\n"))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := runTranscript(t, ctx, "ferias\n")
	assert.NotContains(t, out, "FÉRIAS —")
	assert.True(t, strings.HasSuffix(out, "Bot: Até logo!\n"))
}

func TestRun_InterruptWhileWaitingForInput(t *testing.T) {
	m, err := matcher.New(knowledge.Default())
	require.NoError(t, err)

	// a entrada nunca entrega uma linha, como um terminal ocioso
	in, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	loop := NewLoop(service.NewMessageService(m, nil, nil), in, &out)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	assert.True(t, strings.HasSuffix(out.String(), "Bot: Até logo!\n"))
}
