// Package matcher escolhe a resposta pronta da base de conhecimento que melhor
// atende a pergunta do usuario: primeiro por tag, depois por similaridade com
// os padroes, e por fim a entrada fallback.
package matcher

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ccsbot/internal/domain"
	"ccsbot/internal/nlp"
)

const (
	// DefaultThreshold e a similaridade minima para aceitar um padrao.
	DefaultThreshold = 0.60

	// DefaultNoInputPrompt e devolvido quando a pergunta normalizada fica vazia.
	DefaultNoInputPrompt = "Digite sua dúvida ou 'menu' para ver opções."
)

// ErrEmptyTag indica uma tag que, normalizada, vira texto vazio e casaria com qualquer pergunta.
var ErrEmptyTag = errors.New("tag vazia apos normalizacao")

// Kind indica qual etapa produziu a resposta.
type Kind int

const (
	KindNoInput Kind = iota
	KindTag
	KindPattern
	KindFallback
)

func (k Kind) String() string {
	switch k {
	case KindNoInput:
		return "no_input"
	case KindTag:
		return "tag"
	case KindPattern:
		return "pattern"
	case KindFallback:
		return "fallback"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result descreve a decisao tomada para uma pergunta.
type Result struct {
	Kind    Kind
	EntryID string
	Answer  string
	// Matched e a tag ou o padrao normalizado que decidiu; vazio nos demais casos.
	Matched string
	// Score e a melhor similaridade vista na etapa de padroes (1 para tags).
	Score float64
}

type compiledEntry struct {
	id       string
	answer   string
	tags     []string
	patterns []string
}

// Matcher guarda a base de conhecimento ja normalizada. Depois de criado e
// somente lido, entao pode ser compartilhado entre goroutines sem trava.
type Matcher struct {
	entries   []compiledEntry
	fallback  domain.KnowledgeEntry
	threshold float64
	noInput   string
	logger    *zap.Logger
}

// Option configura o Matcher.
type Option func(*Matcher)

// WithThreshold altera a similaridade minima (padrao 0.60).
func WithThreshold(t float64) Option {
	return func(m *Matcher) { m.threshold = t }
}

// WithNoInputPrompt altera a mensagem para pergunta vazia.
func WithNoInputPrompt(prompt string) Option {
	return func(m *Matcher) { m.noInput = prompt }
}

// WithLogger registra cada decisao em nivel debug.
func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New valida a base e pre-normaliza tags e padroes, preservando a ordem.
// Tags que ficam vazias apos a normalizacao (ex.: "!!") sao recusadas com ErrEmptyTag,
// pois casariam com qualquer pergunta.
func New(kb domain.KnowledgeBase, opts ...Option) (*Matcher, error) {
	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("base de conhecimento invalida: %w", err)
	}

	m := &Matcher{
		threshold: DefaultThreshold,
		noInput:   DefaultNoInputPrompt,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.threshold < 0 || m.threshold > 1 {
		return nil, fmt.Errorf("limiar de similaridade fora de [0,1]: %v", m.threshold)
	}

	m.fallback, _ = kb.Fallback()

	m.entries = make([]compiledEntry, 0, len(kb))
	for _, entry := range kb {
		ce := compiledEntry{id: entry.ID, answer: entry.Answer}
		for _, tag := range entry.Tags {
			nt := nlp.Normalize(tag)
			if nt == "" {
				return nil, fmt.Errorf("%q: tag %q: %w", entry.ID, tag, ErrEmptyTag)
			}
			ce.tags = append(ce.tags, nt)
		}
		for _, patt := range entry.Patterns {
			ce.patterns = append(ce.patterns, nlp.Normalize(patt))
		}
		m.entries = append(m.entries, ce)
	}

	return m, nil
}

// FindBestAnswer devolve o texto de resposta para a pergunta.
func (m *Matcher) FindBestAnswer(query string) string {
	return m.Match(query).Answer
}

// Match aplica, em ordem, pergunta vazia, etapa de tags, etapa de padroes e fallback.
// A primeira regra que se qualifica vence.
func (m *Matcher) Match(query string) Result {
	q := nlp.Normalize(query)
	if q == "" {
		return Result{Kind: KindNoInput, Answer: m.noInput}
	}

	if res, ok := m.matchTag(q); ok {
		m.logger.Debug("resposta por tag",
			zap.String("query", q),
			zap.String("entry_id", res.EntryID),
			zap.String("tag", res.Matched))
		return res
	}

	best, bestPattern, bestScore := -1, "", 0.0
	for i, entry := range m.entries {
		for _, patt := range entry.patterns {
			// so substitui com score estritamente maior: empates ficam com o primeiro
			if score := nlp.Ratio(q, patt); score > bestScore {
				best, bestPattern, bestScore = i, patt, score
			}
		}
	}

	if best >= 0 && bestScore >= m.threshold {
		entry := m.entries[best]
		m.logger.Debug("resposta por similaridade",
			zap.String("query", q),
			zap.String("entry_id", entry.id),
			zap.String("pattern", bestPattern),
			zap.Float64("score", bestScore))
		return Result{Kind: KindPattern, EntryID: entry.id, Answer: entry.answer, Matched: bestPattern, Score: bestScore}
	}

	m.logger.Debug("resposta fallback",
		zap.String("query", q),
		zap.Float64("best_score", bestScore))
	return Result{Kind: KindFallback, EntryID: m.fallback.ID, Answer: m.fallback.Answer, Score: bestScore}
}

func (m *Matcher) matchTag(q string) (Result, bool) {
	for _, entry := range m.entries {
		for _, tag := range entry.tags {
			if strings.Contains(q, tag) {
				return Result{Kind: KindTag, EntryID: entry.id, Answer: entry.answer, Matched: tag, Score: 1}, true
			}
		}
	}
	return Result{}, false
}

// Threshold devolve o limiar em uso.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Entries devolve os ids na ordem de prioridade.
func (m *Matcher) Entries() []string {
	ids := make([]string, len(m.entries))
	for i, e := range m.entries {
		ids[i] = e.id
	}
	return ids
}
