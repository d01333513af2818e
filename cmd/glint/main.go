package main

import (
	"os"

	"github.com/glintui/glint/cmd/glint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
