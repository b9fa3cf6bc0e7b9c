package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	if errOut.Len() > 0 {
		t.Log(errOut.String())
	}
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompileDefaultsToInAndOutFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "in.txt", "a|b\nignored second line\n")

	_, err := run(t, "compile")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0->a1|b1\n1*->\n", string(data))
}

func TestCompileEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "")

	out, err := run(t, "compile", "--input", in, "--output", "-")
	require.NoError(t, err)
	assert.Equal(t, "0*->\n", out)
}

func TestCompilePatternFlag(t *testing.T) {
	out, err := run(t, "compile", "-p", "a+", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "0->a1\n1*->a1\n", out)
}

func TestCompileDOT(t *testing.T) {
	out, err := run(t, "compile", "-p", "ab", "-o", "-", "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, `q1 -> q2 [label="b"];`)
}

func TestCompileSortTransitions(t *testing.T) {
	out, err := run(t, "compile", "-p", "b|a", "-o", "-", "--sort-transitions")
	require.NoError(t, err)
	assert.Equal(t, "0->a1|b1\n1*->\n", out)
}

func TestCompileMalformed(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")
	_, err := run(t, "compile", "-p", "a)", "-o", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced parentheses")
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no partial output expected")
}

func TestCompileMissingInput(t *testing.T) {
	_, err := run(t, "compile", "--input", filepath.Join(t.TempDir(), "missing.txt"), "-o", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}

func TestCompileRejectsBadMergeMode(t *testing.T) {
	_, err := run(t, "compile", "-p", "a", "-o", "-", "--merge", "twice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown merge mode")
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "(a|b)*c")
	require.NoError(t, err)
	assert.Contains(t, out, `explicit:  "(a|b)*.c"`)
	assert.Contains(t, out, `rewritten: "ab|*c."`)
	assert.Contains(t, out, `root:      concat left="ab|*" right="c"`)
	assert.Contains(t, out, "epsilon-free")
	assert.Contains(t, out, "merged")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	listing := writeFile(t, dir, "out.txt", "0->a1\n1*->a1\n")

	out, err := run(t, "check", listing, "", "a", "aaa", "b")
	require.NoError(t, err)
	assert.Equal(t, "\"\"\treject\n\"a\"\taccept\n\"aaa\"\taccept\n\"b\"\treject\n", out)
}

func TestCheckStdin(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("0*->a0\n"))
	cmd.SetArgs([]string{"check", "-", "aa"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\"aa\"\taccept\n", out.String())
}

func TestCheckBadListing(t *testing.T) {
	listing := writeFile(t, t.TempDir(), "bad.txt", "0->a9\n")
	_, err := run(t, "check", listing, "a")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	file := writeFile(t, t.TempDir(), "patterns.txt", "a\na|b\n\na*\n")

	out, err := run(t, "batch", file, "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "# a\n0->a1\n1*->\n# a|b\n0->a1|b1\n1*->\n# \n0*->\n# a*\n0*->a0\n", out)
}

func TestBatchReportsFailures(t *testing.T) {
	file := writeFile(t, t.TempDir(), "patterns.txt", "ab\n(a\n")

	out, err := run(t, "batch", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 patterns failed")
	assert.Contains(t, out, "# ab\n0->a1\n1->b2\n2*->\n")
	assert.Contains(t, out, "# (a\nerror: ")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "regexnfa v"+Version+"\n", out)
}
