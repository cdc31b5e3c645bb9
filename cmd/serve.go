package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"webpage_generator/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "http listen address (overrides server_addr)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, os.Stderr)
	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}
	srv, err := server.New(gen, cfg, logger)
	if err != nil {
		return err
	}

	listen := cfg.ServerAddr
	if flagAddr != "" {
		listen = flagAddr
	}
	if listen == "" {
		listen = ":8080"
	}

	httpSrv := &http.Server{
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 15 * time.Second,
		// 生成本身可能很慢，写超时要覆盖推理超时。
		WriteTimeout: requestTimeout(cfg) + 15*time.Second,
	}
	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", ln.Addr().String()).
		Str("provider", cfg.LLM.Provider).
		Msg("starting web server")
	if err := serveHTTP(ctx, httpSrv, ln, requestTimeout(cfg)+5*time.Second); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

// serveHTTP serves until ctx is done, then waits up to drain for in-flight
// generations to finish before returning.
func serveHTTP(ctx context.Context, srv *http.Server, ln net.Listener, drain time.Duration) error {
	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutCtx)
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve 在 Shutdown 开始时就返回，这里等连接排空。
	return <-shutdownErr
}
