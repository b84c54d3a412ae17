package cli

import (
	"context"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dotenvgen/cli/cmd"
	"github.com/ardnew/dotenvgen/codegen"
	"github.com/ardnew/dotenvgen/dotenv"
	"github.com/ardnew/dotenvgen/pkg"
)

// CLI is the top-level command-line interface for dotenvgen.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"v"`

	Build  cmd.Build  `cmd:"" help:"Generate an init function that loads the env file."`
	Module cmd.Module `cmd:"" help:"Generate a package of string constants."`
	Lookup cmd.Lookup `cmd:"" help:"Resolve one variable as a Go literal or constant."`
	Check  cmd.Check  `cmd:"" help:"Report every malformed line of the env file."`
	Fmt    cmd.Fmt    `cmd:"" help:"Print the entries of an env file."`
	Init   cmd.Init   `cmd:"" help:"Initialize configuration file."`
}

// Run executes the dotenvgen CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
//
// Errors returned by the selected command are described on standard error
// before they are returned.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, cmd.Streams{}, exit, args...)
}

func run(
	ctx context.Context,
	streams cmd.Streams,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	streams = streams.Fill()
	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Version,
		"dotenvFile":         dotenv.DefaultFilename,
		"gopackage":          goPackage(),
		"buildOutput":        cmd.DefaultBuildOutput,
		"moduleFile":         cmd.DefaultModuleFile,
		"namespace":          codegen.DefaultNamespace,
		"visibility":         codegen.DefaultVisibility.String(),
		"visibilityAliases":  strings.Join(codegen.VisibilityAliases(), ", "),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that messages logged while parsing use
	// the requested configuration regardless of flag position.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(streams.Out, streams.Err),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.DefaultEnvars(envarPrefix),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		Report(streams.Err, err)

		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithStreams(ctx, streams)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	err = ktx.Run(ctx, &cli)
	if err != nil {
		Report(streams.Err, err)
	}

	return err
}

// goPackage returns the package name set by go generate, or the default
// package of generated init files.
func goPackage() string {
	if name := os.Getenv("GOPACKAGE"); name != "" {
		return name
	}

	return codegen.DefaultBuildPackage
}
