package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattn/infix"
	"github.com/mattn/infix/internal/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Args(t *testing.T) {
	out, _, err := execute(t, "", "3 + 5 * 2")
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	out, _, err = execute(t, "", "--", "100", "/", "2", "/", "5")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestRoot_ArgsError(t *testing.T) {
	out, _, err := execute(t, "", "10 / 0")
	assert.ErrorIs(t, err, infix.ErrDivisionByZero)
	assert.Empty(t, out)
}

func TestRoot_Tokens(t *testing.T) {
	out, errOut, err := execute(t, "", "--tokens", "3+4")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
	assert.Contains(t, errOut, "tokens: [3, +, 4]")
}

func TestRoot_StdinBatch(t *testing.T) {
	out, _, err := execute(t, "1+1\n\n# comment\n 2*3 \n")
	require.NoError(t, err)
	assert.Equal(t, "1+1 = 2\n2*3 = 6\n", out)
}

func TestRoot_BatchFailure(t *testing.T) {
	out, _, err := execute(t, "3 +\n2*3+5/6*3+15\na + 5\n", "--jobs", "1")
	require.ErrorIs(t, err, errBatchFailed)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Equal(t, strings.Join([]string{
		"3 +: infix: malformed expression: missing operand for '+' (2)",
		"2*3+5/6*3+15 = 21",
		"a + 5: infix: invalid character: 'a' (0)",
		"",
	}, "\n"), out)
}

func TestRoot_BatchPreservesOrder(t *testing.T) {
	var in strings.Builder
	var want strings.Builder
	for i := 0; i < 200; i++ {
		expr := strings.Repeat("1+", i) + "1"
		in.WriteString(expr + "\n")
		want.WriteString(expr + " = " + strconv.Itoa(i+1) + "\n")
	}
	out, _, err := execute(t, in.String(), "-j", "8")
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestRoot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 - 4 - 2\n7 / 2\n"), 0o644))

	out, _, err := execute(t, "", "--file", path, "--format", "table")
	require.NoError(t, err)
	for _, s := range []string{"LINE", "EXPRESSION", "RESULT", "10 - 4 - 2", "7 / 2"} {
		assert.Contains(t, out, s)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)
}

func TestRoot_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "--file", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_BadFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "1")
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "infix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: table\n"), 0o644))

	out, _, err := execute(t, "6*7\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "EXPRESSION")
	assert.Contains(t, out, "42")
}

type fakeReader struct {
	lines  []string
	closed bool
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func newTestApp() (*app, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &app{
		cfg:    &config.Config{Prompt: config.DefaultPrompt, Format: config.FormatPlain},
		ev:     infix.New(),
		logger: zerolog.Nop(),
		opts:   &options{},
		out:    &out,
		errOut: &errOut,
	}, &out, &errOut
}

func TestLoop(t *testing.T) {
	a, out, errOut := newTestApp()
	rl := &fakeReader{lines: []string{"1 + 2", "", ".tokens", "4 / 0", "2*2", ".bogus", ".quit", "99"}}

	require.NoError(t, a.loop(rl))
	assert.True(t, rl.closed)
	assert.Equal(t, "3\ntokens: true\n4\n", out.String())
	assert.Contains(t, errOut.String(), "infix: division by zero: 4 / 0 (2)")
	assert.Contains(t, errOut.String(), "tokens: [2, *, 2]")
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")
	assert.Equal(t, []string{"99"}, rl.lines)
}

func TestLoop_EOF(t *testing.T) {
	a, out, _ := newTestApp()
	rl := &fakeReader{lines: []string{"5 * 5"}}
	require.NoError(t, a.loop(rl))
	assert.Equal(t, "25\n", out.String())
	assert.True(t, rl.closed)
}
