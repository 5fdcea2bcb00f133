package utils

import (
	"fmt"
	"strings"
)

// Topic e um item do menu de assuntos.
type Topic struct {
	Title       string
	Description string
}

// Topics lista os assuntos cobertos pela base de conhecimento, na ordem do menu.
var Topics = []Topic{
	{"Férias", "Pergunte sobre períodos, prazos e agendamento."},
	{"Plano de trabalho", "Envio via SEI, modelos e prazos."},
	{"Afastamentos", "Tipos, documentos e protocolo."},
	{"Atendimento/Contato", "Horário e canais institucionais."},
	{"Documentos públicos", "Onde localizar manuais e normas (PROGEP/UFPB)."},
}

const (
	GoodbyeMessage = "Até logo!"
	RepeatMessage  = "Pode repetir por favor?"
	ExamplesHint   = "Exemplos: 'como marcar férias', 'plano de trabalho', 'afastamento para capacitação'."
)

// BuildBanner gera o cabecalho exibido no inicio da conversa pelo terminal.
func BuildBanner() string {
	return "\n" +
		"====================================================\n" +
		"  Chatbot - Atendimento CCS/UFPB\n" +
		"  Pergunte sobre: férias, plano de trabalho, afastamentos,\n" +
		"  atendimento, horário, documentos, contatos...\n" +
		"\n" +
		"  Comandos úteis: \"menu\", \"opções\", \"listar\", \"sair\"\n" +
		"====================================================\n"
}

// BuildMenu gera a lista numerada de assuntos.
func BuildMenu() string {
	var b strings.Builder
	b.WriteString("=== MENU DE TÓPICOS ===\n")
	for i, t := range Topics {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, t.Title, t.Description)
	}
	b.WriteString("=======================")
	return b.String()
}

// BuildMainMenu gera a mensagem do menu principal enviada pelo WhatsApp.
func BuildMainMenu(name string) string {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "Olá %s, sou o assistente do Setor de Gestão de Pessoas do CCS/UFPB. Sobre qual assunto você quer saber?\n\n", name)
	} else {
		b.WriteString("Olá, sou o assistente do Setor de Gestão de Pessoas do CCS/UFPB. Sobre qual assunto você quer saber?\n\n")
	}
	for i, t := range Topics {
		fmt.Fprintf(&b, "%d️⃣ %s\n", i+1, t.Title)
	}
	b.WriteString("\nDigite sua dúvida ou 'sair' para encerrar.")
	return b.String()
}

// BuildSuggestion sugere o comando que o usuario provavelmente quis digitar.
func BuildSuggestion(command string) string {
	return fmt.Sprintf("Você quis dizer '%s'?", command)
}
