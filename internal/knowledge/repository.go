// Package knowledge carrega a base de conhecimento usada pelo matcher:
// a base embutida, um arquivo JSON/YAML ou a tabela knowledge_entries no PostgreSQL.
package knowledge

import (
	"context"

	"ccsbot/internal/domain"
)

// Repository define a interface para recuperar a base de conhecimento.
type Repository interface {
	Load(ctx context.Context) (domain.KnowledgeBase, error)
}

// BuiltinRepository serve a base embutida no binario.
type BuiltinRepository struct{}

// Load devolve Default().
func (BuiltinRepository) Load(context.Context) (domain.KnowledgeBase, error) {
	return Default(), nil
}
