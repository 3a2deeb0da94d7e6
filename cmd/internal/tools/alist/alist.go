package alist

import (
	"fmt"

	"github.com/nathanhack/qecc/cmd/internal/tools"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Properties []string
	Name       string
	Verbose    bool
)

var AlistRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println("unable to load the code: ", err)
		return
	}

	if err := code.Save(Properties, Name); err != nil {
		fmt.Println("unable to save: ", err)
	}
}
