package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "ask <pergunta>",
		Short: "Responde uma única pergunta e sai",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			res := a.matcher.Match(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Answer)
			if verbose {
				fmt.Fprintf(out, "\n[%s] entrada=%s similaridade=%.3f\n", res.Kind, res.EntryID, res.Score)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "mostra a etapa, a entrada e a similaridade")
	return cmd
}
