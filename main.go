// Command dotenvgen generates Go source from .env files.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/dotenvgen/cli"
	"github.com/ardnew/dotenvgen/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// The failure has already been reported on stderr.
		log.Debug("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
