// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/config"
)

var (
	configPath string // Path to the configuration directory
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "foodtable-backend",
		Short: "Foodtable-Backend is the REST API for shared group food orders",
		Long: `Foodtable-Backend is the REST API for shared group food orders.
Groups of users plan a daily restaurant order together: members join a group,
one member places the group order and everyone adds their own items to it.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"etc/",
		"Path to the directory holding main.toml",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
