package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "ecoagua",
		Short:        "Building water consumption estimator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(tariffsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
