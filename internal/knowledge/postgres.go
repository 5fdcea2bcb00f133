package knowledge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"ccsbot/internal/domain"
)

// PostgresRepository e uma implementacao de Repository usando PostgreSQL.
// A tabela e criada por database.EnsureSchema.
type PostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresRepository cria uma nova instancia do repositorio PostgreSQL.
func NewPostgresRepository(db *sql.DB, logger *zap.Logger) *PostgresRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresRepository{db: db, logger: logger}
}

// Load recupera todas as entradas na ordem da coluna position.
func (r *PostgresRepository) Load(ctx context.Context) (domain.KnowledgeBase, error) {
	query := `
    SELECT id, tags, patterns, answer
    FROM knowledge_entries
    ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar base de conhecimento no banco de dados: %w", err)
	}
	defer rows.Close()

	var kb domain.KnowledgeBase
	for rows.Next() {
		var entry domain.KnowledgeEntry
		if err := rows.Scan(&entry.ID, pq.Array(&entry.Tags), pq.Array(&entry.Patterns), &entry.Answer); err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de conhecimento: %w", err)
		}
		kb = append(kb, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteracao das entradas de conhecimento: %w", err)
	}

	r.logger.Info("base de conhecimento carregada do PostgreSQL", zap.Int("entries", len(kb)))
	return kb, nil
}

// Seed substitui o conteudo da tabela pela base informada, numa unica transacao.
func (r *PostgresRepository) Seed(ctx context.Context, kb domain.KnowledgeBase) error {
	if err := kb.Validate(); err != nil {
		return fmt.Errorf("base de conhecimento invalida: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transacao: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM knowledge_entries`); err != nil {
		return fmt.Errorf("erro ao limpar knowledge_entries: %w", err)
	}

	insert := `
    INSERT INTO knowledge_entries (position, id, tags, patterns, answer)
    VALUES ($1, $2, $3, $4, $5)`

	for i, entry := range kb {
		_, err := tx.ExecContext(ctx, insert,
			i,
			entry.ID,
			pq.Array(nonNil(entry.Tags)),
			pq.Array(nonNil(entry.Patterns)),
			entry.Answer,
		)
		if err != nil {
			return fmt.Errorf("erro ao inserir entrada %q: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar transacao: %w", err)
	}

	r.logger.Info("base de conhecimento gravada no PostgreSQL", zap.Int("entries", len(kb)))
	return nil
}

// nonNil evita gravar NULL nas colunas text[] NOT NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
