package cmd

import (
	"github.com/nathanhack/qecc/cmd/internal/create/css"
	"github.com/nathanhack/qecc/cmd/internal/create/hamming"
	"github.com/nathanhack/qecc/cmd/internal/create/hgp"
	"github.com/nathanhack/qecc/cmd/internal/create/repetition"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create codes",
	Long:    `create provides the ability to make classical seed codes and CSS quantum codes and save them so they can be used later by the tools.`,
}

// createHammingCmd represents the hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_ALIST",
	Aliases: []string{"ham"},
	Short:   "Creates a classical Hamming code parity check matrix",
	Long:    `Creates a classical Hamming code parity check matrix, a common seed for CSS and hypergraph product codes.`,
	Args:    cobra.ExactArgs(1),
	Run:     hamming.HammingRun,
}

// createRepetitionCmd represents the repetition command
var createRepetitionCmd = &cobra.Command{
	Use:     "repetition OUTPUT_ALIST",
	Aliases: []string{"rep"},
	Short:   "Creates a classical repetition code parity check matrix",
	Long:    `Creates a classical repetition code parity check matrix.`,
	Args:    cobra.ExactArgs(1),
	Run:     repetition.RepetitionRun,
}

// createCssCmd represents the css command
var createCssCmd = &cobra.Command{
	Use:   "css HX_ALIST [HZ_ALIST] OUTPUT_JSON",
	Short: "Creates a CSS code from stabilizer matrices",
	Long:  `Creates a CSS code directly from one or two classical parity check matrices used as the hx and hz stabilizer generator matrices. When HZ_ALIST is omitted hz is a copy of hx.`,
	Args:  cobra.RangeArgs(2, 3),
	Run:   css.CssRun,
}

// createHgpCmd represents the hgp command
var createHgpCmd = &cobra.Command{
	Use:   "hgp H1_ALIST [H2_ALIST] OUTPUT_JSON",
	Short: "Creates a hypergraph product CSS code",
	Long:  `Creates a CSS code from one or two classical seed parity check matrices via the hypergraph product construction. When H2_ALIST is omitted h2 is a copy of h1.`,
	Args:  cobra.RangeArgs(2, 3),
	Run:   hgp.HgpRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParitySymbols, "parity", "p", 3, "the parity symbols >=2, sets codeword size == 2^parity-1")
	createHammingCmd.Flags().BoolVarP(&hamming.Verbose, "verbose", "v", false, "enable verbose info")

	createCmd.AddCommand(createRepetitionCmd)
	createRepetitionCmd.Flags().UintVarP(&repetition.Length, "length", "l", 3, "the codeword length >=2")
	createRepetitionCmd.Flags().BoolVarP(&repetition.Verbose, "verbose", "v", false, "enable verbose info")

	createCmd.AddCommand(createCssCmd)
	createCssCmd.Flags().StringVarP(&css.Name, "name", "n", "", "the name stored with the code")
	createCssCmd.Flags().IntVarP(&css.Distance, "distance", "d", 0, "a precomputed code distance to store, 0 means unset")
	createCssCmd.Flags().BoolVarP(&css.Verbose, "verbose", "v", false, "enable verbose info")

	createCmd.AddCommand(createHgpCmd)
	createHgpCmd.Flags().StringVarP(&hgp.Name, "name", "n", "", "the name stored with the code")
	createHgpCmd.Flags().BoolVarP(&hgp.WithDistance, "with-distance", "d", false, "compute the classical hypergraph product distance bound and store it")
	createHgpCmd.Flags().UintVarP(&hgp.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	createHgpCmd.Flags().BoolVarP(&hgp.Verbose, "verbose", "v", false, "enable verbose info")
}
