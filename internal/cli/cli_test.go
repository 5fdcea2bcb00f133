package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsbot/config"
)

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"KB_SOURCE", "KB_FILE", "DATABASE_URL", "MATCH_THRESHOLD", "LOG_LEVEL", "API_KEY"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	cleanEnv(t)

	out, err := execute(t, "", "ask", "como", "marcar", "férias")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "FÉRIAS — Informações básicas:"))

	out, err = execute(t, "", "ask", "-v", "telefone do setr")
	require.NoError(t, err)
	assert.Contains(t, out, "[pattern] entrada=horario_contato similaridade=0.970")
}

func TestAsk_ThresholdFlag(t *testing.T) {
	cleanEnv(t)

	out, err := execute(t, "", "--threshold", "0.99", "ask", "telefone do setr")
	require.NoError(t, err)
	assert.Contains(t, out, "Não encontrei")

	_, err = execute(t, "", "--threshold", "2", "ask", "ferias")
	assert.ErrorIs(t, err, config.ErrInvalidThreshold)
}

func TestChat_DefaultCommand(t *testing.T) {
	cleanEnv(t)

	out, err := execute(t, "plano de trabalho\nsair\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Bot: PLANO DE TRABALHO")
	assert.True(t, strings.HasSuffix(out, "Bot: Até logo!\n"))
}

func TestKBCheck_FromFile(t *testing.T) {
	cleanEnv(t)
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: ramal
  tags: [ramal]
  answer: "Ramal 1234"
- id: fallback
  answer: "Sem resposta"
`), 0o600))

	out, err := execute(t, "", "--kb-file", path, "kb", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "base de conhecimento valida (file): 2 entradas, limiar 0.60")
	assert.Contains(t, out, "ramal\nfallback")

	out, err = execute(t, "", "--kb-file", path, "ask", "qual o ramal?")
	require.NoError(t, err)
	assert.Equal(t, "Ramal 1234\n", out)
}

func TestKBCheck_InvalidFile(t *testing.T) {
	cleanEnv(t)
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "sem_fallback", "answer": "x"}]`), 0o600))

	_, err := execute(t, "", "--kb-file", path, "kb", "check")
	assert.ErrorContains(t, err, "fallback")
}

func TestKBSeed_RequiresDatabase(t *testing.T) {
	cleanEnv(t)

	_, err := execute(t, "", "kb", "seed")
	assert.ErrorIs(t, err, config.ErrMissingDatabase)
}

func TestUnknownSource(t *testing.T) {
	cleanEnv(t)

	_, err := execute(t, "", "--kb-source", "redis", "ask", "ferias")
	assert.ErrorIs(t, err, config.ErrUnknownSource)
}
