package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decompoe em NFD e descarta as marcas combinantes (acentos, cedilha, til).
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize converte o texto para a forma usada em todas as comparacoes:
// minusculas, sem acentos, apenas [a-z0-9] separados por um unico espaco.
// Nunca falha; texto vazio resulta em "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	// NFD e runes.Remove nao falham: bytes invalidos passam adiante e viram espaco abaixo
	text, _, _ = transform.String(stripMarks, text)

	text = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, text)

	return strings.Join(strings.Fields(text), " ")
}
