package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the img2pdf web server.
The server accepts image uploads or a zip archive and answers with the PDF,
and serves a small upload page at /.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	addPageFlags(serveCmd)
	addRenderFlags(serveCmd)
}

// resolveServeHostPort resolves port and host from flags and environment variables.
// Explicit flags win over WEB_PORT and WEB_HOST.
func resolveServeHostPort(cmd *cobra.Command, cfg *config.Config) (int, string) {
	port := cfg.Web.Port
	host := cfg.Web.Host
	if cmd.Flags().Changed("port") {
		port = mustGetInt(cmd, "port")
	}
	if cmd.Flags().Changed("host") {
		host = mustGetString(cmd, "host")
	}
	return port, host
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}
	port, host := resolveServeHostPort(cmd, cfg)

	server := web.NewServer(cfg, opts.Spec, opts.Font, port, host)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting img2pdf on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
