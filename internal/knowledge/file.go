package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ccsbot/internal/domain"
)

// FileRepository le a base de um arquivo .json, .yaml ou .yml contendo a lista
// de entradas na ordem de prioridade.
type FileRepository struct {
	Path string
}

// NewFileRepository cria um repositorio para o arquivo informado.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

// Load le e decodifica o arquivo. A validacao fica a cargo de quem consome a base.
func (r *FileRepository) Load(ctx context.Context) (domain.KnowledgeBase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler base de conhecimento %s: %w", r.Path, err)
	}

	var kb domain.KnowledgeBase
	switch ext := strings.ToLower(filepath.Ext(r.Path)); ext {
	case ".json":
		err = json.Unmarshal(data, &kb)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &kb)
	default:
		return nil, fmt.Errorf("formato de base de conhecimento nao suportado: %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar base de conhecimento %s: %w", r.Path, err)
	}

	return kb, nil
}
