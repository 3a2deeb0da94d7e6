package css

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nathanhack/qecc/alist"
	csscode "github.com/nathanhack/qecc/css"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Name     string
	Distance int
	Verbose  bool
)

var CssRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	hx, err := alist.ReadFile(args[0])
	if err != nil {
		fmt.Println("unable to read hx: ", err)
		return
	}

	var hz interface{}
	outputFile := args[1]
	if len(args) == 3 {
		z, err := alist.ReadFile(args[1])
		if err != nil {
			fmt.Println("unable to read hz: ", err)
			return
		}
		hz = z
		outputFile = args[2]
	}

	code, err := csscode.New(hx, hz, Name)
	if err != nil {
		fmt.Println("unable to create CSS code: ", err)
		return
	}

	if Distance > 0 {
		if err := code.Set(csscode.Overrides{D: &Distance}); err != nil {
			fmt.Println("unable to set distance: ", err)
			return
		}
	}

	bs, err := json.Marshal(code)
	if err != nil {
		fmt.Println("unable to serialize the CSS code: ", err)
		return
	}

	err = os.WriteFile(outputFile, bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
		return
	}
	fmt.Println(code)
}
