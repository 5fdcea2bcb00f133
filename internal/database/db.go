package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open abre a conexao com o banco de dados PostgreSQL e confirma com um ping.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão com o banco de dados: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao conectar com o banco de dados (ping): %w", err)
	}

	return db, nil
}

const knowledgeSchema = `
    CREATE TABLE IF NOT EXISTS knowledge_entries (
        position INTEGER PRIMARY KEY,
        id VARCHAR(255) NOT NULL UNIQUE,
        tags TEXT[] NOT NULL DEFAULT '{}',
        patterns TEXT[] NOT NULL DEFAULT '{}',
        answer TEXT NOT NULL
    );`

// EnsureSchema cria a tabela da base de conhecimento, se ela nao existir.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, knowledgeSchema); err != nil {
		return fmt.Errorf("erro ao criar tabela knowledge_entries: %w", err)
	}
	return nil
}
