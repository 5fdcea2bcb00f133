package domain

import (
	"errors"
	"fmt"
)

// FallbackID identifica a entrada devolvida quando nenhuma outra se qualifica.
const FallbackID = "fallback"

var (
	ErrEmptyID            = errors.New("entrada sem id")
	ErrDuplicateID        = errors.New("id duplicado")
	ErrMissingFallback    = errors.New("base de conhecimento sem entrada fallback")
	ErrFallbackHasRules   = errors.New("entrada fallback nao pode ter tags ou padroes")
	ErrEmptyKnowledgeBase = errors.New("base de conhecimento vazia")
)

// KnowledgeEntry representa uma resposta pronta da base de conhecimento.
// Tags sao testadas por contencao no texto normalizado; Patterns por similaridade.
type KnowledgeEntry struct {
	ID       string   `json:"id" yaml:"id"`
	Tags     []string `json:"tags" yaml:"tags"`
	Patterns []string `json:"patterns" yaml:"patterns"`
	Answer   string   `json:"answer" yaml:"answer"`
}

// KnowledgeBase e a lista ordenada de entradas. A ordem define a prioridade.
type KnowledgeBase []KnowledgeEntry

// Validate verifica ids unicos e a existencia de exatamente um fallback sem regras.
func (kb KnowledgeBase) Validate() error {
	if len(kb) == 0 {
		return ErrEmptyKnowledgeBase
	}

	seen := make(map[string]struct{}, len(kb))
	for i, entry := range kb {
		if entry.ID == "" {
			return fmt.Errorf("posicao %d: %w", i, ErrEmptyID)
		}
		if _, ok := seen[entry.ID]; ok {
			return fmt.Errorf("%q: %w", entry.ID, ErrDuplicateID)
		}
		seen[entry.ID] = struct{}{}

		if entry.ID == FallbackID && (len(entry.Tags) > 0 || len(entry.Patterns) > 0) {
			return fmt.Errorf("%q: %w", entry.ID, ErrFallbackHasRules)
		}
	}

	if _, ok := seen[FallbackID]; !ok {
		return ErrMissingFallback
	}
	return nil
}

// Fallback retorna a entrada fallback, localizada pelo id.
func (kb KnowledgeBase) Fallback() (KnowledgeEntry, bool) {
	for _, entry := range kb {
		if entry.ID == FallbackID {
			return entry, true
		}
	}
	return KnowledgeEntry{}, false
}

// Clone devolve uma copia profunda da base.
func (kb KnowledgeBase) Clone() KnowledgeBase {
	out := make(KnowledgeBase, len(kb))
	for i, entry := range kb {
		out[i] = KnowledgeEntry{
			ID:       entry.ID,
			Tags:     append([]string(nil), entry.Tags...),
			Patterns: append([]string(nil), entry.Patterns...),
			Answer:   entry.Answer,
		}
	}
	return out
}
