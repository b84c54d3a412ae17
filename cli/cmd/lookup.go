package cmd

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/ardnew/dotenvgen/codegen"
	"github.com/ardnew/dotenvgen/dotenv"
	"github.com/ardnew/dotenvgen/log"
)

// Lookup resolves one variable, loading the env file into the environment
// first, and prints it as a Go string literal or a constant declaration.
type Lookup struct {
	Source `embed:""`

	Name    string `arg:"" help:"Variable to resolve."`
	Message string `arg:"" help:"Error reported when NAME is not defined." optional:""`

	Const   string `help:"Emit a Go file declaring this constant instead of a bare literal." placeholder:"IDENT" short:"c"`
	Package string `default:"${gopackage}" help:"Package clause used with --const."                                  short:"p"`
	Output  string `default:"-"            help:"Output file, or '-' for standard output."        placeholder:"FILE" short:"o"`
}

// Run executes the lookup command.
func (l *Lookup) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	value, err := dotenv.Lookup(l.Name,
		dotenv.WithDir(l.Dir),
		dotenv.WithFilename(l.File),
		dotenv.WithMessage(l.Message),
	)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "resolved variable", slog.String("name", l.Name))

	if l.Const == "" {
		return writeOutput(ctx, l.Output, []byte(codegen.Literal(value)+"\n"))
	}

	var buf bytes.Buffer

	err = codegen.Lookup(ctx, &buf, l.Name, value,
		codegen.WithConstName(l.Const),
		codegen.WithPackage(l.Package),
		codegen.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	return writeOutput(ctx, l.Output, buf.Bytes())
}
