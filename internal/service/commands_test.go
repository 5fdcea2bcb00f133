package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ccsbot/internal/nlp"
)

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"sair":    CommandExit,
		"Tchau!":  CommandExit,
		" EXIT ":  CommandExit,
		"menu":    CommandMenu,
		"Opções":  CommandMenu,
		"opcoes":  CommandMenu,
		"listar":  CommandMenu,
		"ferias":  CommandNone,
		"sair ja": CommandNone,
		"":        CommandNone,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseCommand(nlp.Normalize(in)), "input %q", in)
	}
}

func TestSuggestCommand(t *testing.T) {
	got, ok := SuggestCommand("mneu")
	assert.True(t, ok)
	assert.Equal(t, "menu", got)

	got, ok = SuggestCommand("lsitar")
	assert.True(t, ok)
	assert.Equal(t, "listar", got)

	_, ok = SuggestCommand("menu")
	assert.False(t, ok, "exact commands are handled before matching")

	_, ok = SuggestCommand("xyzzy")
	assert.False(t, ok)

	_, ok = SuggestCommand("mneu por favor")
	assert.False(t, ok)

	_, ok = SuggestCommand("")
	assert.False(t, ok)
}
