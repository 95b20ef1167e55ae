package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/scheduler"

	"github.com/spf13/cobra"
)

var sweepTimeout time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired review sessions once and exit",
	Long:  `ローカルキャッシュと DB の両方から、有効期限を過ぎた復習セッションを削除します。`,
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepTimeout, "timeout", time.Minute, "削除処理のタイムアウト")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}

	b, err := openBackends(config.Cfg, logger)
	if err != nil {
		logger.Error("Error initializing backends", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := b.Close(logger); err != nil {
			logger.Error("Error closing backends", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), sweepTimeout)
	defer cancel()

	res, err := scheduler.NewSweeper(b.store, config.Cfg.Sweeper, logger).RunOnce(ctx)
	if err != nil {
		return fmt.Errorf("sweep expired sessions: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "swept %d local and %d remote sessions\n", res.Local, res.Remote)
	return nil
}
