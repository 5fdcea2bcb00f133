package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMenu(t *testing.T) {
	menu := BuildMenu()
	assert.True(t, strings.HasPrefix(menu, "=== MENU DE TÓPICOS ==="))
	assert.Contains(t, menu, "1. Férias — Pergunte sobre períodos, prazos e agendamento.")
	assert.Contains(t, menu, "5. Documentos públicos")
}

func TestBuildMainMenu(t *testing.T) {
	assert.Contains(t, BuildMainMenu("Maria"), "Olá Maria,")
	assert.True(t, strings.HasPrefix(BuildMainMenu(""), "Olá, sou"))
	assert.Contains(t, BuildMainMenu(""), "Plano de trabalho")
}

func TestBuildBanner(t *testing.T) {
	assert.Contains(t, BuildBanner(), "Atendimento CCS/UFPB")
}

func TestBuildSuggestion(t *testing.T) {
	assert.Equal(t, "Você quis dizer 'menu'?", BuildSuggestion("menu"))
}
