package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ccsbot/internal/chat"
	"ccsbot/internal/service"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Conversa interativa pelo terminal (padrão)",
		Args:  cobra.NoArgs,
		RunE:  runChat(opts),
	}
}

func runChat(opts *rootOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd, opts)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		svc := service.NewMessageService(a.matcher, nil, a.logger)
		return chat.NewLoop(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	}
}
