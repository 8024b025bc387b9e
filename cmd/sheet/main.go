// Package main is the entry point for the character sheet CLI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "World of Darkness character sheet rules engine",
	Long: `sheet classifies traits, normalizes dot ratings, derives per-form
attributes and keeps character sheets in Redis.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		message, description := errors.Present(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		if description != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", description)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagRedisAddr, "redis", "", "Redis address, comma separated for a cluster (env SHEET_REDIS_ADDR)")
	flags.StringVar(&flagLang, "lang", "", "display language (env SHEET_LANG)")
	flags.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (env SHEET_LOG_LEVEL)")

	rootCmd.AddCommand(taxonomyCmd)
	rootCmd.AddCommand(formsCmd)
	rootCmd.AddCommand(dotsCmd)
	rootCmd.AddCommand(characterCmd)
}
