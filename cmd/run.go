package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ethwatchd/internal/adapter/ethernet"
	infraDhcp "ethwatchd/internal/adapter/infrastructure/dhcp"
	"ethwatchd/internal/adapter/infrastructure/file"
	"ethwatchd/internal/adapter/infrastructure/network"
	"ethwatchd/internal/conn"
	"ethwatchd/internal/pkg/config"
	"ethwatchd/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var configFlag string

// newDriver wires the real Ethernet driver from the infrastructure adapters.
func newDriver(ifaceName string) *ethernet.Driver {
	return ethernet.NewDriver(
		ifaceName,
		network.NewManagerAdapter(),
		file.NewManagerAdapter(),
		infraDhcp.NewTransportAdapter(),
	)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bring the interface up (DHCP with static fallback) and maintain it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		logging.InitLogger(cfg.Logging)
		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Starting daemon")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		driver := newDriver(cfg.Interface.Name)
		defer driver.Close()

		manager := conn.NewManager(cfg.Interface.Name, driver, cfg.NetConfig(), cfg.LinkCheckInterval())

		if err := manager.Initialize(ctx); err != nil {
			// Hardware absence is unrecoverable; the daemon halts.
			logger.WithError(err).Error("Initialization failed")
			return err
		}

		if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		logger.Info("Daemon stopped")
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := runCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(runCmd)
}
