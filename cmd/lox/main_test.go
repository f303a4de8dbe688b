package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout replaced by a pipe and returns
// everything written to it. Used to exercise the subcommand entry points
// end to end the way spec.md §8's worked examples are phrased: source in,
// printed output out.
func captureStdout(t *testing.T, fn func() int) (string, int) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	code := fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), code
}

func TestEvaluateCmd_Arithmetic(t *testing.T) {
	out, code := captureStdout(t, func() int { return evaluateCmd("print 1 + 2 * 3;") })
	assert.Equal(t, 0, code)
	assert.Equal(t, "7\n", out)
}

func TestEvaluateCmd_StringConcat(t *testing.T) {
	out, code := captureStdout(t, func() int { return evaluateCmd(`print "foo" + "bar";`) })
	assert.Equal(t, 0, code)
	assert.Equal(t, "foobar\n", out)
}

func TestEvaluateCmd_DivisionContract(t *testing.T) {
	out, code := captureStdout(t, func() int { return evaluateCmd("print 1 / 2; print 4 / 2;") })
	assert.Equal(t, 0, code)
	assert.Equal(t, "0.5\n2\n", out)
}

func TestEvaluateCmd_Truthiness(t *testing.T) {
	out, code := captureStdout(t, func() int { return evaluateCmd("print !nil; print !0;") })
	assert.Equal(t, 0, code)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestEvaluateCmd_BlockScoping(t *testing.T) {
	out, code := captureStdout(t, func() int {
		return evaluateCmd("var x = 10; { var x = 1; print x; } print x;")
	})
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n10\n", out)
}

func TestEvaluateCmd_UndefinedVariableExitsRuntimeError(t *testing.T) {
	_, code := captureStdout(t, func() int { return evaluateCmd("print missing;") })
	assert.Equal(t, 70, code)
}

func TestTokenize_UnterminatedStringExitsLexError(t *testing.T) {
	_, code := captureStdout(t, func() int { return tokenize(`"unterminated`) })
	assert.Equal(t, 65, code)
}

func TestParseCmd_GroupAndUnary(t *testing.T) {
	out, code := captureStdout(t, func() int { return parseCmd("(1 + 2) * -3;") })
	assert.Equal(t, 0, code)
	assert.Equal(t, "(* (group (+ 1.0 2.0)) (- 3.0))\n", out)
}

func TestParseCmd_LexicalErrorStillPrintsSuccessfulRenders(t *testing.T) {
	out, code := captureStdout(t, func() int { return parseCmd("print 1; @ print 2;") })
	assert.Equal(t, 65, code)
	assert.Equal(t, "(print 1.0)\n(print 2.0)\n", out)
}

func TestRunCmd_StopsAtRuntimeErrorAfterFullParse(t *testing.T) {
	out, code := captureStdout(t, func() int {
		return runCmd("print 1; print missing; print 2;")
	})
	assert.Equal(t, 70, code)
	assert.Equal(t, "1\n", out)
}

func TestRunCmd_ParseErrorPreventsAnyExecution(t *testing.T) {
	out, code := captureStdout(t, func() int {
		return runCmd("print 1; 1 + ;")
	})
	assert.Equal(t, 65, code)
	assert.Equal(t, "", out)
}
