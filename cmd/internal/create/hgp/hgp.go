package hgp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/qecc/alist"
	"github.com/nathanhack/qecc/css/hgp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Name         string
	WithDistance bool
	Threads      uint
	Verbose      bool
)

var HgpRun = func(cmd *cobra.Command, args []string) {
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

	h1, err := alist.ReadFile(args[0])
	if err != nil {
		fmt.Println("unable to read h1: ", err)
		return
	}

	var h2 interface{}
	outputFile := args[1]
	if len(args) == 3 {
		h, err := alist.ReadFile(args[1])
		if err != nil {
			fmt.Println("unable to read h2: ", err)
			return
		}
		h2 = h
		outputFile = args[2]
	}

	code, err := hgp.New(h1, h2, Name)
	if err != nil {
		fmt.Println("unable to create HGP code: ", err)
		return
	}
	code.Threads = int(Threads)

	if WithDistance {
		// the classical bound over the seed codes, not a search over hx/hz
		if _, err := code.D(ctx); err != nil {
			fmt.Println("unable to compute the distance bound: ", err)
			return
		}
	}

	bs, err := json.Marshal(code.Code)
	if err != nil {
		fmt.Println("unable to serialize the HGP code: ", err)
		return
	}

	err = os.WriteFile(outputFile, bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
		return
	}
	fmt.Println(code)
}
