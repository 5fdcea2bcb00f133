package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ccsbot/config"
	"ccsbot/internal/database"
	"ccsbot/internal/knowledge"
	"ccsbot/internal/logging"
)

func newKBCmd(opts *rootOptions) *cobra.Command {
	kbCmd := &cobra.Command{
		Use:   "kb",
		Short: "Operações sobre a base de conhecimento",
	}
	kbCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Carrega e valida a base de conhecimento configurada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKBCheck(cmd, opts)
		},
	})
	kbCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Grava a base embutida (ou --kb-file) na tabela knowledge_entries do PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKBSeed(cmd, opts)
		},
	})
	return kbCmd
}

func runKBCheck(cmd *cobra.Command, opts *rootOptions) error {
	a, err := bootstrap(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ids := a.matcher.Entries()
	fmt.Fprintf(cmd.OutOrStdout(), "base de conhecimento valida (%s): %d entradas, limiar %.2f\n%s\n",
		a.cfg.KnowledgeSource, len(ids), a.matcher.Threshold(), strings.Join(ids, "\n"))
	return nil
}

func runKBSeed(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if cfg.DatabaseUrl == "" {
		return config.ErrMissingDatabase
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	source := knowledge.Repository(knowledge.BuiltinRepository{})
	if cfg.KnowledgeSource == config.SourceFile {
		source = knowledge.NewFileRepository(cfg.KnowledgeFile)
	}
	kb, err := source.Load(ctx)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.DatabaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}
	if err := knowledge.NewPostgresRepository(db, logger).Seed(ctx, kb); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d entradas gravadas em knowledge_entries\n", len(kb))
	return nil
}
