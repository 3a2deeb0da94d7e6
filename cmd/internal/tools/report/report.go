package report

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/nathanhack/qecc/cmd/internal/tools"
	"github.com/nathanhack/qecc/css"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	WithDistance bool
	Threads      uint
	Verbose      bool
)

var ReportRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println("unable to load the code: ", err)
		return
	}
	code.Threads = int(Threads)

	if WithDistance {
		if _, err := code.D(ctx); err != nil {
			fmt.Println("unable to compute the distance: ", err)
			return
		}
	}

	fmt.Printf("Testing %v ..\n", code)
	rep := code.Test()

	fmt.Println("Test result:")
	for _, check := range rep.Checks {
		switch check.Outcome {
		case css.Passed:
			color.Green("%v: Passed", check.Name)
		case css.Failed:
			color.Red("%v: Failed", check.Name)
		case css.Skipped:
			color.Red("%v: Skipped (%v)", check.Name, check.Err)
		}
	}

	girth, err := code.Girth(ctx)
	switch {
	case err != nil:
		fmt.Println("unable to compute the girth: ", err)
	case girth > 0:
		fmt.Printf("Tanner graph girth: %v\n", girth)
	default:
		fmt.Println("Tanner graphs are cycle free")
	}

	if rep.Valid {
		fmt.Printf("%v is a valid CSS code\n", code)
	} else {
		color.Red("%v is an **invalid** CSS code", code)
	}
}
