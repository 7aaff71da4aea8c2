package main

import (
	"os"

	"github.com/ytget/func-grapher/cmd/func-grapher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
