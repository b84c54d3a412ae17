package cmd

import (
	"bytes"
	"context"

	"github.com/ardnew/dotenvgen/codegen"
	"github.com/ardnew/dotenvgen/log"
)

// Build generates a Go file whose init function loads the env file into the
// process environment.
type Build struct {
	Source `embed:""`

	Package string `default:"${gopackage}"  help:"Package clause of the generated file."        short:"p"`
	Output  string `default:"${buildOutput}" help:"Output file, or '-' for standard output." placeholder:"FILE" short:"o"`
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := b.find(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = codegen.Build(ctx, &buf, file.Entries(),
		codegen.WithPackage(b.Package),
		codegen.WithSource(headerSource(file, b.Output)),
		codegen.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	return writeOutput(ctx, b.Output, buf.Bytes())
}
