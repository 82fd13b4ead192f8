package main

import (
	"os"

	"github.com/thatjuan/organize/cmd/organize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
