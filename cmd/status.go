package cmd

import (
	"fmt"

	"ethwatchd/internal/conn"
	"ethwatchd/internal/pkg/config"
	"ethwatchd/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the interface's current IP, gateway, subnet, DNS and link state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		logging.InitLogger(cfg.Logging)

		driver := newDriver(cfg.Interface.Name)
		defer driver.Close()

		// One-shot report; the addressing mode reads as unset since this
		// process never initialized the interface itself.
		manager := conn.NewManager(cfg.Interface.Name, driver, cfg.NetConfig(), cfg.LinkCheckInterval())
		manager.PrintConfig()
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := statusCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(statusCmd)
}
