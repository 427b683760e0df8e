package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubepop/internal/observability"
	"github.com/vovakirdan/cubepop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CubePop SSH server",
	Long: `Start an SSH server so players can connect and play.

Each connection gets its own session with the mode menu. All players share
one results database. Game events are logged per player at debug level.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.cubepop/host_key

Examples:
  cubepop serve                     # Listen on :23234
  cubepop serve --ssh :2222         # Listen on port 2222
  cubepop serve --metrics :9110     # Also expose Prometheus metrics
  cubepop serve --log-level debug   # Log every pop and rotation

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (e.g. :9110)")
}

func runServe(cmd *cobra.Command, _ []string) {
	level := flagLogLevel
	if !cmd.Flags().Changed("log-level") {
		level = "info"
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MetricsAddress = flagMetricsAddr
	cfg.TickRate = flagFPS
	cfg.Logger = observability.NewLogger(os.Stderr, level, "cubepop-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
