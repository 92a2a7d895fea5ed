package main

import (
	"os"

	"github.com/bnema/toll-backoffice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
