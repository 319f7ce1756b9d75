// Package cmd wires the command-line interface of the replay engine.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/LerianStudio/payments-replay/csvio"
	"github.com/LerianStudio/payments-replay/internal/zlog"
	"github.com/LerianStudio/payments-replay/ledger"
)

const (
	defaultInputPath  = "transactions.csv"
	defaultOutputPath = "accounts.csv"

	envPrefix = "PAYMENTS_REPLAY"
)

var rootCmd = &cobra.Command{
	Use:   "payments-replay [input.csv] [output.csv]",
	Short: "Replay a transaction stream into account snapshots",
	Long: `Replay an ordered CSV stream of deposits, withdrawals, disputes, resolves,
and chargebacks against per-client accounts, then write the final balance
snapshot of every account as CSV.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReplay,
}

func init() {
	rootCmd.Flags().String("log-level", "info", "minimum log severity (debug, info, warn, error)")
	rootCmd.Flags().Bool("json-logs", false, "emit logs as JSON lines instead of console output")
	rootCmd.Flags().Bool("quiet", false, "suppress the snapshot table on stdout")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, flag := range []string{"log-level", "json-logs", "quiet"} {
		// Flag lookup only fails for unknown names, which would be a typo above.
		cobra.CheckErr(viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)))
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := zlog.New(zlog.Config{
		Level: viper.GetString("log-level"),
		JSON:  viper.GetBool("json-logs"),
	})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	inputPath := defaultInputPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	outputPath := defaultOutputPath
	if len(args) > 1 {
		outputPath = args[1]
	}

	runLogger := logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("input", inputPath),
		zap.String("output", outputPath),
	)

	var table io.Writer = cmd.OutOrStdout()
	if viper.GetBool("quiet") {
		table = io.Discard
	}

	return replay(runLogger, inputPath, outputPath, table)
}

// replay runs one full pass: decode, apply, encode.
func replay(logger *zlog.Logger, inputPath, outputPath string, table io.Writer) error {
	start := time.Now()

	logger.Info("replay started")

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	accounts := ledger.New()

	stats, err := csvio.Replay(input, accounts)
	if err != nil {
		return fmt.Errorf("failed to replay %s: %w", inputPath, err)
	}

	if stats.Skipped > 0 {
		logger.Warn("records skipped at the boundary", zap.Int("skipped", stats.Skipped))
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer output.Close()

	if err := csvio.WriteSnapshots(io.MultiWriter(output, table), accounts.Accounts()); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}

	if err := output.Close(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Info("replay finished",
		zap.Int("rows", stats.Rows),
		zap.Int("applied", stats.Applied),
		zap.Int("skipped", stats.Skipped),
		zap.Int("accounts", accounts.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
