package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/sungrowcsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = "Alice┃42┃3.14┃\nhello\n  Bob ┃ 7 \n"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootStdin(t *testing.T) {
	stdout, _, err := run(t, input)
	require.NoError(t, err)
	assert.Equal(t, "\"Alice\",42,3.14\n\"Bob\",7\n", stdout)
}

func TestRootDashIsStdin(t *testing.T) {
	stdout, _, err := run(t, input, "-")
	require.NoError(t, err)
	assert.Equal(t, "\"Alice\",42,3.14\n\"Bob\",7\n", stdout)
}

func TestRootFormats(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"json":        {args: []string{"-o", "json"}, want: "[[\"Alice\",42,3.14],[\"Bob\",7]]\n"},
		"jsonl":       {args: []string{"--output", "jsonl"}, want: "[\"Alice\",42,3.14]\n[\"Bob\",7]\n"},
		"tsv":         {args: []string{"-o", "tsv"}, want: "Alice\t42\t3.14\nBob\t7\n"},
		"go-template": {args: []string{"-o", "go-template={{.Line}}"}, want: "1\n3\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := run(t, input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRootFiles(t *testing.T) {
	first := writeFile(t, "first.txt", "a┃1\n")
	second := writeFile(t, "second.txt", "b┃2\n")
	stdout, _, err := run(t, "", first, second)
	require.NoError(t, err)
	assert.Equal(t, "\"a\",1\n\"b\",2\n", stdout)
}

func TestRootMissingFile(t *testing.T) {
	_, _, err := run(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open input")
}

func TestRootOutFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	stdout, _, err := run(t, input, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\"Alice\",42,3.14\n\"Bob\",7\n", string(data))
}

func TestRootUnknownFormat(t *testing.T) {
	_, _, err := run(t, input, "-o", "xml")
	require.ErrorIs(t, err, sungrowcsv.ErrUnsupportedFormat)
}

func TestRootInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, input, "--log-level", "loud")
	require.Error(t, err)
}

func TestRootLogsSummary(t *testing.T) {
	_, stderr, err := run(t, input, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=converted")
	assert.Contains(t, stderr, "input=stdin")
	assert.Contains(t, stderr, "lines=3")
	assert.Contains(t, stderr, "skipped=1")
}

func TestRootQuietByDefault(t *testing.T) {
	_, stderr, err := run(t, input)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRootTypes(t *testing.T) {
	stdout, _, err := run(t, "", "--types")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, `"INTEGER"`)
	assert.Contains(t, stdout, `"real"`)
	assert.Contains(t, stdout, "true")
}
