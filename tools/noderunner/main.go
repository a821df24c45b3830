package main

import (
	"fmt"
	"os"

	"noderunner.io/tools/noderunner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
