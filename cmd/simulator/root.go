package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	simulator "github.com/frhnkemal/camunda-automation-testing"
	redisstore "github.com/frhnkemal/camunda-automation-testing/internal/adapters/redis"
	"github.com/frhnkemal/camunda-automation-testing/internal/config"
	"github.com/frhnkemal/camunda-automation-testing/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "simulator",
	Short: "Simulator executes BPMN quote-validation processes without a process engine",
	Long: `Simulator interprets BPMN process definitions against a DMN decision table
at design time, so a quote-validation flow can be exercised and validated
before it is ever deployed to a real process engine.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
}

// newEngine loads the configuration referenced by --config and builds an
// engine with the store backend it selects.
func newEngine(cmd *cobra.Command) (*simulator.Engine, config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	opts := []simulator.Option{simulator.WithLogger(logger)}
	if cfg.Store.Backend == "redis" {
		opts = append(opts, simulator.WithStore(
			redisstore.New(cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DB)))
	}
	return simulator.New(opts...), cfg, logger, nil
}
