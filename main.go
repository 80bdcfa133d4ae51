package main

import (
	"os"

	"github.com/rohanthewiz/logger"

	"searchpage/cli"
)

func main() {
	// Initialize logger; the config may lower or raise the level.
	logger.SetLogLevel("info")

	if err := cli.Execute(); err != nil {
		logger.LogErr(err, "searchpage failed")
		os.Exit(1)
	}
}
