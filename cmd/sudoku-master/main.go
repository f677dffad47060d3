package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel string
	logger   *zap.Logger
)

var mainCommand = &cobra.Command{
	Use:   "sudoku-master",
	Short: "Sudoku puzzle generator, solver, and game server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build()
		return err
	},
}

func init() {
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
