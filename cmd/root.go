package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qecc",
	Short: "Build and validate CSS quantum error correcting codes",
	Long: `qecc derives the algebraic structure of CSS quantum error correcting codes
from classical binary parity check matrices: block parameters, logical operator
bases, canonical forms, distances and a structural validity report.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
