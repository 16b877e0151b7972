package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "clinicbooking",
		Short:        "Doctor appointment availability and booking gateway",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to TOML configuration")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(slotsCmd(&configPath))
	rootCmd.AddCommand(bookCmd(&configPath))
	rootCmd.AddCommand(journalCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
