// main is the entry point for the gitvalue CLI.
package main

import (
	"fmt"
	"os"

	"github.com/amritasroy/gitvalue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
