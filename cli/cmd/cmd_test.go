package cmd

import (
	"bytes"
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/dotenvgen/codegen"
	"github.com/ardnew/dotenvgen/dotenv"
)

// testContext returns a context whose commands read stdin and write to the
// returned buffer.
func testContext(stdin string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	ctx := WithStreams(context.Background(), Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &bytes.Buffer{},
	})

	return ctx, &out
}

// envDir returns a temporary directory containing a .env file.
func envDir(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dotenv.DefaultFilename), []byte(contents), 0o644))

	return dir
}

func source(dir string) Source {
	return Source{File: dotenv.DefaultFilename, Dir: dir}
}

func parseGo(t *testing.T, src []byte) *ast.File {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	return f
}

func TestBuild_Run(t *testing.T) {
	dir := envDir(t, "A=1\nB='two words'\n")
	output := filepath.Join(dir, "app", DefaultBuildOutput)

	ctx, _ := testContext("")

	b := &Build{Source: source(filepath.Join(dir, "app")), Package: "app", Output: output}
	require.NoError(t, b.Run(ctx))

	src, err := os.ReadFile(output)
	require.NoError(t, err)

	f := parseGo(t, src)
	assert.Equal(t, "app", f.Name.Name)
	assert.True(t, ast.IsGenerated(f))
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by dotenvgen from ../.env; DO NOT EDIT."))
	assert.Contains(t, string(src), `{"B", "two words"}`)
}

func TestBuild_RunStdout(t *testing.T) {
	dir := envDir(t, "A=1\n")
	ctx, out := testContext("")

	b := &Build{Source: source(dir), Package: "main", Output: StdioPath}
	require.NoError(t, b.Run(ctx))

	f := parseGo(t, out.Bytes())
	assert.Equal(t, "main", f.Name.Name)
}

func TestBuild_RunParseError(t *testing.T) {
	dir := envDir(t, "A=1\nB=\"open\n")
	output := filepath.Join(dir, DefaultBuildOutput)

	ctx, _ := testContext("")

	b := &Build{Source: source(dir), Package: "main", Output: output}

	err := b.Run(ctx)

	var pe *dotenv.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, filepath.Join(dir, dotenv.DefaultFilename), pe.Path)
	assert.NoFileExists(t, output)
}

func TestBuild_RunNotFound(t *testing.T) {
	ctx, _ := testContext("")

	b := &Build{
		Source:  Source{File: ".env.dotenvgen-cmd-missing", Dir: t.TempDir()},
		Package: "main",
		Output:  StdioPath,
	}

	assert.ErrorIs(t, b.Run(ctx), dotenv.ErrNotFound)
}

func TestModule_Run(t *testing.T) {
	dir := envDir(t, "API_URL=https://example.com\nAPI_URL=https://override\n")
	ctx, _ := testContext("")

	m := &Module{
		Source:     source(dir),
		Namespace:  "settings",
		Visibility: codegen.VisibilityInternal,
		Root:       dir,
	}
	require.NoError(t, m.Run(ctx))

	output := filepath.Join(dir, "internal", "settings", DefaultModuleFile)
	src, err := os.ReadFile(output)
	require.NoError(t, err)

	f := parseGo(t, src)
	assert.Equal(t, "settings", f.Name.Name)
	assert.Contains(t, string(src), "from ../../.env;")
	assert.Contains(t, string(src), `API_URL = "https://override"`)
}

func TestModule_Output(t *testing.T) {
	m := &Module{Namespace: "vars", Root: "gen"}
	assert.Equal(t, filepath.Join("gen", "vars", DefaultModuleFile), m.output())

	m.Output = "x.go"
	assert.Equal(t, "x.go", m.output())
}

func TestLookup_Run(t *testing.T) {
	const name = "DOTENVGEN_CMD_TEST_URL"

	t.Cleanup(func() { os.Unsetenv(name) })

	dir := envDir(t, name+"=\"https://example.com/?a=\\\"b\\\"\"\n")

	ctx, out := testContext("")

	l := &Lookup{Source: source(dir), Name: name, Package: "main", Output: StdioPath}
	require.NoError(t, l.Run(ctx))
	assert.Equal(t, `"https://example.com/?a=\"b\""`+"\n", out.String())

	out.Reset()

	l.Const = "apiURL"
	l.Package = "config"
	require.NoError(t, l.Run(ctx))

	f := parseGo(t, out.Bytes())
	assert.Equal(t, "config", f.Name.Name)
	assert.Contains(t, out.String(), `const apiURL = "https://example.com/?a=\"b\""`)
}

func TestLookup_RunMissing(t *testing.T) {
	const name = "DOTENVGEN_CMD_TEST_DATABASE_URL"

	t.Cleanup(func() { os.Unsetenv(name) })

	dir := envDir(t, name+"=postgres://\n")
	ctx, out := testContext("")

	l := &Lookup{
		Source:  source(dir),
		Name:    "DOTENVGEN_CMD_TEST_DATABSE_URL",
		Message: "set the database URL",
		Output:  StdioPath,
	}

	err := l.Run(ctx)

	var missing *dotenv.MissingVariableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "set the database URL", missing.Error())
	assert.Contains(t, missing.Suggestions, name)
	assert.Zero(t, out.Len())
}

func TestCheck_Run(t *testing.T) {
	dir := envDir(t, "A=1\nB=2\nA=3\n")
	ctx, out := testContext("")

	c := &Check{Source: source(dir)}
	require.NoError(t, c.Run(ctx))
	assert.Contains(t, out.String(), ": 3 entries, 2 names\n")
}

func TestCheck_RunReportsEveryError(t *testing.T) {
	dir := envDir(t, "1A=x\nOK=1\nB='open\nC=\"bad\\q\"\n")
	ctx, out := testContext("")

	err := (&Check{Source: source(dir)}).Run(ctx)
	require.ErrorIs(t, err, ErrCheck)

	pes := dotenv.ParseErrors(err)
	require.Len(t, pes, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{pes[0].Line, pes[1].Line, pes[2].Line})
	assert.Equal(t, dotenv.KindInvalidEscape, pes[2].Kind)
	assert.Zero(t, out.Len())
}

func TestNative_Run(t *testing.T) {
	const input = "export A=1\nB='x y'\n# comment\nA=2\nC=\"line\\nbreak\"\n"

	tests := []struct {
		name string
		cmd  Native
		want string
	}{
		{
			name: "as written",
			want: "A=1\nB='x y'\nA=2\nC=\"line\\nbreak\"\n",
		},
		{
			name: "dedupe",
			cmd:  Native{Dedupe: true},
			want: "A=2\nB='x y'\nC=\"line\\nbreak\"\n",
		},
		{
			name: "export",
			cmd:  Native{Dedupe: true, Export: true},
			want: "export A=2\nexport B='x y'\nexport C=\"line\\nbreak\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(input)

			n := tt.cmd
			n.Path = StdioPath

			require.NoError(t, n.Run(ctx))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestJSON_Run(t *testing.T) {
	ctx, out := testContext("Z=last\nA=1\nZ=again\nQ=\"say \\\"hi\\\"\"\n")

	j := &JSON{Indent: 2}
	j.Path = StdioPath

	require.NoError(t, j.Run(ctx))
	assert.Equal(t, "{\n  \"Z\": \"again\",\n  \"A\": \"1\",\n  \"Q\": \"say \\\"hi\\\"\"\n}\n", out.String())

	out.Reset()

	j.Indent = 0
	ctx = WithStreams(ctx, Streams{In: strings.NewReader("A=1\n"), Out: out})
	require.NoError(t, j.Run(ctx))
	assert.Equal(t, "{\"A\":\"1\"}\n", out.String())
}

func TestYAML_Run(t *testing.T) {
	dir := envDir(t, "NAME=dotenvgen\nPORT=8080\nEMPTY=\nNAME=again\n")
	ctx, out := testContext("")

	y := &YAML{Indent: 2}
	y.Path = filepath.Join(dir, dotenv.DefaultFilename)

	require.NoError(t, y.Run(ctx))

	var got yaml.MapSlice
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, yaml.MapSlice{
		{Key: "NAME", Value: "again"},
		{Key: "PORT", Value: "8080"},
		{Key: "EMPTY", Value: ""},
	}, got)
}

func TestFmt_RunParseError(t *testing.T) {
	ctx, out := testContext("GOOD=1\nBAD LINE\n")

	n := &Native{}
	n.Path = StdioPath

	err := n.Run(ctx)
	require.ErrorIs(t, err, dotenv.ErrParse)
	assert.Zero(t, out.Len())
}

func TestHeaderSource(t *testing.T) {
	dir := t.TempDir()
	file := &dotenv.File{Dir: dir, Path: filepath.Join(dir, ".env")}

	assert.Equal(t, ".env", headerSource(file, filepath.Join(dir, "out.go")))
	assert.Equal(t, "../.env", headerSource(file, filepath.Join(dir, "pkg", "out.go")))
}
