package hamming

import (
	"fmt"

	"github.com/nathanhack/qecc/alist"
	classical "github.com/nathanhack/qecc/classical/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ParitySymbols uint
	Verbose       bool
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if ParitySymbols < 2 {
		fmt.Println("hamming codes require >=2 parity symbols")
		return
	}

	H := classical.PCM(int(ParitySymbols))
	if err := alist.WriteFile(args[0], H); err != nil {
		fmt.Println("unable to write file: ", err)
	}
}
