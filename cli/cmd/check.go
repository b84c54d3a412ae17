package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/dotenvgen/dotenv"
)

// Check parses the env file and reports every malformed line.
type Check struct {
	Source `embed:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := c.find(ctx)
	if err != nil {
		return err
	}

	entries, err := dotenv.CollectAll(file.Entries())
	if err != nil {
		return ErrCheck.
			With(slog.String("path", file.Path)).
			With(slog.Int("errors", len(dotenv.ParseErrors(err)))).
			Wrap(err)
	}

	_, err = fmt.Fprintf(streamsFrom(ctx).Out, "%s: %d entries, %d names\n",
		file.Path,
		len(entries),
		len(dotenv.Dedupe(entries)),
	)

	return err
}
