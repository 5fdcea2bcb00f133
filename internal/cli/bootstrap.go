package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ccsbot/config"
	"ccsbot/internal/database"
	"ccsbot/internal/knowledge"
	"ccsbot/internal/logging"
	"ccsbot/internal/matcher"
)

type app struct {
	cfg     config.Config
	logger  *zap.Logger
	matcher *matcher.Matcher
	db      *sql.DB
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	_ = a.logger.Sync()
}

// loadConfig le o ambiente e aplica as flags informadas na linha de comando.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("kb-source") {
		cfg.KnowledgeSource = opts.source
	}
	if flags.Changed("kb-file") {
		cfg.KnowledgeFile = opts.file
		if !flags.Changed("kb-source") {
			cfg.KnowledgeSource = config.SourceFile
		}
	}
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

// newRepository escolhe a origem da base. Para postgres, devolve tambem a conexao aberta.
func newRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (knowledge.Repository, *sql.DB, error) {
	switch cfg.KnowledgeSource {
	case config.SourceFile:
		return knowledge.NewFileRepository(cfg.KnowledgeFile), nil, nil
	case config.SourcePostgres:
		db, err := database.Open(ctx, cfg.DatabaseUrl)
		if err != nil {
			return nil, nil, err
		}
		return knowledge.NewPostgresRepository(db, logger), db, nil
	default:
		return knowledge.BuiltinRepository{}, nil, nil
	}
}

// bootstrap monta configuracao, logger, base de conhecimento e matcher.
func bootstrap(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, db, err := newRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, db: db}

	kb, err := repo.Load(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("erro ao carregar base de conhecimento (%s): %w", cfg.KnowledgeSource, err)
	}

	a.matcher, err = matcher.New(kb, matcher.WithThreshold(cfg.Threshold), matcher.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("base de conhecimento pronta",
		zap.String("source", cfg.KnowledgeSource),
		zap.Int("entries", len(kb)),
		zap.Float64("threshold", cfg.Threshold))
	return a, nil
}
