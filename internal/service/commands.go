package service

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Command e um comando reconhecido antes de consultar o matcher.
type Command int

const (
	CommandNone Command = iota
	CommandExit
	CommandMenu
)

// suggestionThreshold e a similaridade Jaro-Winkler minima para sugerir um comando.
const suggestionThreshold = 0.85

// commandWords relaciona cada palavra normalizada ao comando; "opções" normaliza para "opcoes".
var commandWords = map[string]Command{
	"sair":   CommandExit,
	"exit":   CommandExit,
	"tchau":  CommandExit,
	"menu":   CommandMenu,
	"opcoes": CommandMenu,
	"listar": CommandMenu,
}

// suggestionOrder fixa a ordem de comparacao para que empates sejam deterministicos.
var suggestionOrder = []string{"menu", "opcoes", "listar", "sair", "tchau", "exit"}

// ParseCommand compara o texto ja normalizado com o conjunto fixo de comandos.
func ParseCommand(normalized string) Command {
	return commandWords[normalized]
}

// SuggestCommand devolve o comando mais parecido com uma palavra digitada errada,
// por exemplo "mneu" -> "menu". Frases com mais de uma palavra nao geram sugestao.
func SuggestCommand(normalized string) (string, bool) {
	if normalized == "" || strings.Contains(normalized, " ") {
		return "", false
	}
	if _, ok := commandWords[normalized]; ok {
		return "", false
	}

	best, bestScore := "", float32(0)
	for _, word := range suggestionOrder {
		score, err := edlib.StringsSimilarity(normalized, word, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = word, score
		}
	}
	if bestScore < suggestionThreshold {
		return "", false
	}
	return best, true
}
