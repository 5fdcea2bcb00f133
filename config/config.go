package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Origens possiveis da base de conhecimento.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

var (
	ErrUnknownSource    = errors.New("origem da base de conhecimento desconhecida")
	ErrMissingFile      = errors.New("variavel de ambiente KB_FILE nao encontrada")
	ErrMissingDatabase  = errors.New("variavel de ambiente DATABASE_URL nao encontrada")
	ErrInvalidThreshold = errors.New("MATCH_THRESHOLD deve estar entre 0 e 1")
)

type Config struct {
	ApiKey          string  `json:"apikey"`
	WasenderUrl     string  `json:"wasender_url"`
	DatabaseUrl     string  `json:"database_url"`
	KnowledgeSource string  `json:"kb_source"`
	KnowledgeFile   string  `json:"kb_file"`
	Threshold       float64 `json:"match_threshold"`
	Port            string  `json:"port"`
	LogLevel        string  `json:"log_level"`
}

// Load carrega as variaveis de ambiente. Sem argumentos, le o arquivo .env se ele
// existir; arquivos informados explicitamente precisam existir.
// Variaveis ja definidas no processo nao sao sobrescritas.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("erro ao carregar arquivo de ambiente: %w", err)
	}

	threshold, err := getEnvFloat("MATCH_THRESHOLD", 0.60)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ApiKey:          os.Getenv("API_KEY"),
		WasenderUrl:     getEnv("WASENDER_URL", "https://www.wasenderapi.com"),
		DatabaseUrl:     os.Getenv("DATABASE_URL"),
		KnowledgeSource: getEnv("KB_SOURCE", SourceBuiltin),
		KnowledgeFile:   os.Getenv("KB_FILE"),
		Threshold:       threshold,
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "warn"),
	}

	return cfg, cfg.Validate()
}

// Validate confere se a origem escolhida tem o que precisa.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.Threshold)
	}

	switch c.KnowledgeSource {
	case SourceBuiltin:
	case SourceFile:
		if c.KnowledgeFile == "" {
			return ErrMissingFile
		}
	case SourcePostgres:
		if c.DatabaseUrl == "" {
			return ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.KnowledgeSource)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("variavel de ambiente %s invalida: %w", key, err)
	}
	return f, nil
}
