package repetition

import (
	"fmt"

	"github.com/nathanhack/qecc/alist"
	classical "github.com/nathanhack/qecc/classical/repetition"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Length  uint
	Verbose bool
)

var RepetitionRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if Length < 2 {
		fmt.Println("repetition codes require length >=2")
		return
	}

	H := classical.PCM(int(Length))
	if err := alist.WriteFile(args[0], H); err != nil {
		fmt.Println("unable to write file: ", err)
	}
}
