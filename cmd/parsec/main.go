package main

import (
	"os"

	"github.com/parsec-go/parsec/cmd/parsec/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
