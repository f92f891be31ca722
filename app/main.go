package main

import (
	"fmt"
	"os"

	"simplesh/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "simplesh:", err)
		os.Exit(1)
	}
}
