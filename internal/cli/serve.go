package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ccsbot/internal/handler"
	"ccsbot/internal/service"
	"ccsbot/pkg/wasender"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Servidor HTTP com /ask e o webhook do WhatsApp (WaSender)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	a, err := bootstrap(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.ApiKey == "" {
		a.logger.Warn("API_KEY nao definida: respostas pelo WhatsApp serao recusadas pela WaSender")
	}
	sender := wasender.New(a.cfg.ApiKey, wasender.WithBaseURL(a.cfg.WasenderUrl))
	svc := service.NewMessageService(a.matcher, sender, a.logger)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler.NewRouter(a.matcher, svc, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.logger.Info("encerrando servidor HTTP")
	return srv.Shutdown(shutdownCtx)
}
