package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ethwatchd",
	Short: "ethwatchd keeps an Ethernet interface connected: DHCP with static fallback, lease renewal, link monitoring",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
