package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"newsagent/internal/config"
	"newsagent/internal/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{
		Use:           "digest",
		Short:         "Fetch and summarize news from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(fetchCMD(), historyCMD())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig logs to stderr so stdout carries only JSON.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger.New(os.Stderr, "digest", cfg.LogLevel))
	return cfg, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
