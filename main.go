package main

import (
	"os"

	"github.com/avyukth/medsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
