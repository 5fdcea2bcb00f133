package nlp

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio mede a similaridade entre a e b no intervalo [0, 1] pelo algoritmo de
// Ratcliff/Obershelp: 2*M/T, onde M e o total de caracteres nos blocos em comum
// (maior substring comum, recursivamente nos restos) e T a soma dos tamanhos.
// A ordem dos argumentos importa nos empates do alinhamento: a e a consulta, b o padrao.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
