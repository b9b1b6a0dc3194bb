package main

import (
	"os"

	"github.com/msto63/roboscript/cmd/robo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
