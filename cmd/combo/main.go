package main

import (
	"os"

	"github.com/zostay/combo/cmd/combo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
