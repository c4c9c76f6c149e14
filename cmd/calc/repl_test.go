package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testREPL(t *testing.T, cfg config) (*repl, *bytes.Buffer, *test.Hook) {
	t.Helper()
	cfg.Color = "never"
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	return newREPL(cfg, &out, log), &out, hook
}

func TestREPL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"one", "2 + 3 * 4\n", "result: 14\n"},
		{"no-newline", "(2 + 3) * 4", "result: 20\n"},
		{"trim", "   5+3  \n", "result: 8\n"},
		{"empty", "\n\n  \n", ""},
		{"several", "1\n2.5\n--5\n", "result: 1\nresult: 2.5\nresult: 5\n"},
		{"exit", "1\nexit\n2\n", "result: 1\n"},
		{"sair", "1\n  SAIR \n2\n", "result: 1\n"},
		{"exit-prefix", "exit 1\n", "syntax error: invalid character 'e': column 1\n"},
		{"syntax", "2 +\n", "syntax error: unexpected end of input: column 4\n"},
		{"math", "5 / 0\n", "math error: division by zero: column 3\n"},
		{"continue", "(1\n7\n", "syntax error: open parenthesis with no close parenthesis: column 1\nresult: 7\n"},
		{"trailing", "2 3\n", "syntax error: unexpected \"3\" after end of expression: column 3\n"},
		{"long", strings.Repeat("1+", 40000) + "1\n2\n", "result: 40001\nresult: 2\n"},
		{"percent", "2 % 3\n", "syntax error: invalid character '%': column 3\n"},
		{"crlf", "1+1\r\n", "result: 2\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, out, _ := testREPL(t, defaultConfig())
			require.NoError(t, r.run(strings.NewReader(c.in)))
			assert.Equal(t, c.out, out.String())
		})
	}
}

func TestREPLInteractive(t *testing.T) {
	cfg := defaultConfig()
	cfg.Prompt = "? "
	r, out, _ := testREPL(t, cfg)
	r.interactive = true
	require.NoError(t, r.run(strings.NewReader("1\n")))
	want := "calc: + - * / ( )\ntype sair or exit to quit\n? result: 1\n? \n"
	assert.Equal(t, want, out.String())
}

func TestREPLConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "%.2f"
	cfg.AllowTrailing = true
	cfg.Exit = []string{"quit"}
	cfg.Tokens = true
	r, out, _ := testREPL(t, cfg)
	require.NoError(t, r.run(strings.NewReader("1 / 3\n2 3\nexit\nquit\n4\n")))
	want := "tokens: [1 / 3]\nresult: 0.33\n" +
		"tokens: [2 3]\nresult: 2.00\n" +
		"syntax error: invalid character 'e': column 1\n"
	assert.Equal(t, want, out.String())
}

func TestREPLDepth(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxDepth = 2
	r, out, _ := testREPL(t, cfg)
	require.NoError(t, r.run(strings.NewReader("((1))\n(((1)))\n")))
	assert.Equal(t, "result: 1\nsyntax error: expression nested too deeply at \"(\": column 3\n", out.String())
}

func TestREPLLogs(t *testing.T) {
	r, _, hook := testREPL(t, defaultConfig())
	assert.True(t, r.eval("1 + 1", ""))
	assert.False(t, r.eval("1 +", ""))
	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "evaluated", entries[0].Message)
	assert.Equal(t, "1 + 1", entries[0].Data["expr"])
	assert.Equal(t, 2.0, entries[0].Data["result"])
	assert.Equal(t, "evaluation failed", entries[1].Message)
	assert.Equal(t, "1 +", entries[1].Data["expr"])
	assert.Error(t, entries[1].Data["err"].(error))
}

func TestEvalArg(t *testing.T) {
	r, out, _ := testREPL(t, defaultConfig())
	assert.True(t, r.eval("7 * 6", ""))
	assert.False(t, r.eval("7 $ 6", ""))
	assert.Equal(t, "42\nsyntax error: invalid character '$': column 3\n", out.String())
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin went away")
}

func TestREPLReadError(t *testing.T) {
	r, _, _ := testREPL(t, defaultConfig())
	assert.EqualError(t, r.run(failReader{}), "stdin went away")
}

func TestREPLReadErrorAfterLine(t *testing.T) {
	r, out, _ := testREPL(t, defaultConfig())
	in := io.MultiReader(strings.NewReader("3 * 3\n"), failReader{})
	assert.EqualError(t, r.run(in), "stdin went away")
	assert.Equal(t, "result: 9\n", out.String())
}

func TestEvalPercentFormat(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "%.1f%%"
	r, out, _ := testREPL(t, cfg)
	require.NoError(t, r.run(strings.NewReader("50\n")))
	assert.Equal(t, "result: 50.0%\n", out.String())
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "error", category(errors.New("other")))
}
