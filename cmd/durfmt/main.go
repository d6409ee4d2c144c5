package main

import (
	"os"

	"github.com/Dicklesworthstone/durfmt/cmd/durfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
