package cmd

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/ardnew/dotenvgen/codegen"
	"github.com/ardnew/dotenvgen/log"
)

// Module generates a package that declares each variable of the env file as
// a string constant.
type Module struct {
	Source `embed:""`

	Namespace  string             `default:"${namespace}"  help:"Name of the generated package."                                                   short:"n"`
	Visibility codegen.Visibility `default:"${visibility}" help:"Package placement, public or internal. Accepts: ${visibilityAliases}." placeholder:"VIS" short:"V"`
	Root       string             `default:"."             help:"Directory the package directory is created in."                                   short:"r" type:"path"`
	Output     string             `help:"Output file, or '-' for standard output (default: ROOT/[internal/]NAMESPACE/${moduleFile})." placeholder:"FILE" short:"o"`
}

// Run executes the module command.
func (m *Module) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := m.find(ctx)
	if err != nil {
		return err
	}

	output := m.output()

	var buf bytes.Buffer

	err = codegen.Module(ctx, &buf, file.Entries(),
		codegen.WithPackage(m.Namespace),
		codegen.WithVisibility(m.Visibility),
		codegen.WithSource(headerSource(file, output)),
		codegen.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	return writeOutput(ctx, output, buf.Bytes())
}

// output returns the explicit output path, or the file inside the package
// directory selected by the root, visibility and namespace.
func (m *Module) output() string {
	if m.Output != "" {
		return m.Output
	}

	return filepath.Join(m.Visibility.Dir(m.Root, m.Namespace), DefaultModuleFile)
}
