package cmd

import (
	"github.com/nathanhack/qecc/cmd/internal/tools/alist"
	"github.com/nathanhack/qecc/cmd/internal/tools/chart"
	"github.com/nathanhack/qecc/cmd/internal/tools/report"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for CSS codes",
	Long:    `Tools for CSS codes`,
}

// toolsTestCmd represents the test command
var toolsTestCmd = &cobra.Command{
	Use:   "test CODE_JSON",
	Short: "Runs the structural validity suite on a CSS code",
	Long:  `Runs the six structural validity checks on a CSS code and prints the per check outcomes, the code parameters and the Tanner graph girth.`,
	Args:  cobra.ExactArgs(1),
	Run:   report.ReportRun,
}

// toolsAlistCmd represents the alist command
var toolsAlistCmd = &cobra.Command{
	Use:   "alist CODE_JSON",
	Short: "Exports a CSS code's matrices in alist format",
	Long:  `Exports the selected matrix properties of a CSS code as alist files named {name}_{property}.alist.`,
	Args:  cobra.ExactArgs(1),
	Run:   alist.AlistRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart CODE_JSON OUTPUT_HTML",
	Short: "Charts the row and column weight distributions of a CSS code",
	Long:  `Creates a bar chart of the row and column weight distributions of the hx and hz stabilizer matrices.`,
	Args:  cobra.ExactArgs(2),
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.AddCommand(toolsTestCmd)
	toolsTestCmd.Flags().BoolVarP(&report.WithDistance, "with-distance", "d", false, "also compute the code distance (may be very expensive)")
	toolsTestCmd.Flags().UintVarP(&report.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	toolsTestCmd.Flags().BoolVarP(&report.Verbose, "verbose", "v", false, "enable verbose info")

	toolsCmd.AddCommand(toolsAlistCmd)
	toolsAlistCmd.Flags().StringSliceVarP(&alist.Properties, "properties", "p", []string{"hx", "hz", "lx", "lz"}, "the matrix properties to export")
	toolsAlistCmd.Flags().StringVarP(&alist.Name, "name", "n", "", "the file name prefix, defaults to the code's name")
	toolsAlistCmd.Flags().BoolVarP(&alist.Verbose, "verbose", "v", false, "enable verbose info")

	toolsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().BoolVarP(&chart.Verbose, "verbose", "v", false, "enable verbose info")
}
