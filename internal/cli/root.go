package cli

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile   string
	source    string
	file      string
	threshold float64
	logLevel  string
}

// NewRootCmd monta a arvore de comandos. Sem subcomando, abre a conversa no terminal.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "ccsbot",
		Short:         "ccsbot — atendimento do Setor de Gestão de Pessoas do CCS/UFPB",
		Long:          "Responde dúvidas frequentes (férias, plano de trabalho, afastamentos, contatos, documentos) a partir de uma base de conhecimento fixa.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runChat(opts),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "arquivo .env a carregar (padrão: .env, se existir)")
	flags.StringVar(&opts.source, "kb-source", "", "origem da base: builtin, file ou postgres (sobrepõe KB_SOURCE)")
	flags.StringVar(&opts.file, "kb-file", "", "arquivo JSON/YAML da base (sobrepõe KB_FILE)")
	flags.Float64Var(&opts.threshold, "threshold", 0, "similaridade mínima entre 0 e 1 (sobrepõe MATCH_THRESHOLD)")
	flags.StringVar(&opts.logLevel, "log-level", "", "nível de log: debug, info, warn, error (sobrepõe LOG_LEVEL)")

	rootCmd.AddCommand(newChatCmd(opts))
	rootCmd.AddCommand(newAskCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newKBCmd(opts))
	return rootCmd
}

// Execute executa o comando raiz.
func Execute() error {
	return NewRootCmd().Execute()
}
