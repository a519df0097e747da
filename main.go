package main

import (
	"os"

	"github.com/resonancehq/climatecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
