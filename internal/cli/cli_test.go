package cli_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/docrun/internal/cli"
	"github.com/vk/docrun/internal/docgen"
	"github.com/vk/docrun/internal/term"
)

// execute runs one full invocation against a recording engine and returns
// the exit status the lifecycle controller requested plus everything written
// to the diagnostic sink.
func execute(t *testing.T, eng docgen.Engine, args ...string) (int, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	code := -1
	c := &cli.CLI{
		ErrW:   buf,
		Engine: eng,
		Exit:   func(status int) { code = status },
		Sleep:  func(time.Duration) {},
	}

	root := c.Root()
	root.SetArgs(args)
	root.SetOut(buf)
	root.SetErr(buf)
	require.NoError(t, root.Execute())

	return code, buf.String()
}

func TestFile_MinimalVariant(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	code, _ := execute(t, rec, "file", `"a.src"`)

	require.Equal(t, 0, code)
	require.Equal(t, 1, rec.Calls)
	require.Equal(t, "file/1", rec.Variant)
	require.Equal(t, []term.Value{term.String("a.src")}, rec.Args)
}

func TestFile_WithOptionsVariant(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	code, _ := execute(t, rec, "file", `"a.src"`, `[{dir = "out"}]`)

	require.Equal(t, 0, code)
	require.Equal(t, "file/2", rec.Variant)
	require.Equal(t, []term.Value{
		term.String("a.src"),
		term.List{term.Record{{Name: "dir", Value: term.String("out")}}},
	}, rec.Args)
}

func TestApplication_DirAndOptionsVariant(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	code, _ := execute(t, rec, "application", `myapp`, `"."`, `[{vsn = "1.0"}]`)

	require.Equal(t, 0, code)
	require.Equal(t, "application/3", rec.Variant)
	require.Equal(t, []term.Value{
		term.Symbol("myapp"),
		term.String("."),
		term.List{term.Record{{Name: "vsn", Value: term.String("1.0")}}},
	}, rec.Args)
}

func TestFiles_ThreeArgumentsIsInvalid(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	code, logs := execute(t, rec, "files", `"a.src"`, `"b.src"`, `"c.src"`)

	require.Equal(t, 1, code)
	require.Zero(t, rec.Calls, "the engine must never run on an arity mismatch")
	require.Contains(t, logs, "files")
	require.Contains(t, logs, "bad arguments")
}

func TestAnyEntryPoint_UnparseableTokenIsDecodeError(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	code, logs := execute(t, rec, "file", `not valid syntax`)

	require.Equal(t, 1, code)
	require.Zero(t, rec.Calls, "the engine must never run when decoding fails")
	require.Contains(t, logs, "not a constant expression")
	require.Contains(t, logs, "not valid syntax")
}

func TestToc_SingleArgumentIsInvalid(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{}
	code, logs := execute(t, rec, "toc", `"."`)

	require.Equal(t, 1, code)
	require.Zero(t, rec.Calls)
	require.Contains(t, logs, "toc")
	require.Contains(t, logs, "bad arguments")
}

func TestEngineFailure_ExitsOneWithOneDiagnostic(t *testing.T) {
	t.Parallel()

	rec := &docgen.Recorder{Err: errors.New("backend exploded")}
	code, logs := execute(t, rec, "packages", `[mylib]`)

	require.Equal(t, 1, code)
	require.Equal(t, 1, rec.Calls)
	require.Contains(t, logs, "backend exploded")
	require.Equal(t, 1, bytes.Count([]byte(logs), []byte("level=ERROR")))
}

func TestEngineSuccess_ExitsZeroForEveryEntryPoint(t *testing.T) {
	t.Parallel()

	invocations := [][]string{
		{"file", `"a.src"`},
		{"files", `["a.src"]`, `[]`},
		{"packages", `[mylib]`},
		{"application", `myapp`},
		{"toc", `"."`, `["doc/a"]`, `[]`},
	}

	for _, argv := range invocations {
		rec := &docgen.Recorder{}
		code, _ := execute(t, rec, argv...)
		require.Equal(t, 0, code, "argv %v", argv)
		require.Equal(t, 1, rec.Calls)
	}
}

func TestUnknownSubcommand_IsACommandSurfaceError(t *testing.T) {
	t.Parallel()

	c := &cli.CLI{ErrW: &bytes.Buffer{}}
	root := c.Root()
	root.SetArgs([]string{"render", "x"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.Error(t, root.Execute())
}
