package main

import "github.com/nathanhack/qecc/cmd"

func main() {
	cmd.Execute()
}
