package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/daysin/internal/types"
)

// createTempDir creates a temporary directory and returns its path.
// It also registers a cleanup function to remove the directory after the test.
func createTempDir(t testing.TB, prefix string) string {
	tempDir, err := os.MkdirTemp("", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	return tempDir
}

func writeBatch(t testing.TB, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	assert.Len(t, engine.rules, len(allOpConstructors))
	assert.Equal(t, OperationNames(), []string{
		"days", "digits", "digitsum", "leap", "min", "palindrome", "reverse", "words", "year",
	})
}

func TestNewEngine_ConfigRules(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigRule{
		"days":  {Severity: tt.SeverityWarning},
		"words": {Severity: tt.SeverityOff},
	})
	require.NoError(t, err)
	assert.Equal(t, tt.SeverityWarning, engine.findRule("days").Severity())
	assert.True(t, engine.isIgnoredRule("words"))

	_, err = NewEngine(map[string]tt.ConfigRule{"nope": {Severity: tt.SeverityError}})
	assert.Error(t, err)
}

func TestEngine_IgnoreRule(t *testing.T) {
	t.Parallel()
	engine := &Engine{}
	engine.IgnoreRule("test_rule")

	assert.True(t, engine.ignoredRules["test_rule"])
}

func TestEngine_IgnorePath(t *testing.T) {
	t.Parallel()
	engine := &Engine{}
	engine.IgnorePath("fixtures/")
	engine.IgnorePath("*.skip.days")

	assert.True(t, engine.isIgnoredPath("fixtures/a.days"))
	assert.True(t, engine.isIgnoredPath("x.skip.days"))
	assert.False(t, engine.isIgnoredPath("fixturesx/a.days"))
	assert.False(t, engine.isIgnoredPath("a.days"))
}

func TestEngine_Evaluate(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil)
	require.NoError(t, err)

	tests := []struct {
		op    string
		args  []int
		value string
	}{
		{"leap", []int{2000}, "true"},
		{"leap", []int{1900}, "false"},
		{"days", []int{2, 2024}, "29"},
		{"days", []int{4, 2023}, "30"},
		{"year", []int{2023}, "365"},
		{"palindrome", []int{-1221}, "true"},
		{"reverse", []int{-123}, "-321"},
		{"digits", []int{1000}, "4"},
		{"digitsum", []int{252}, "4"},
		{"words", []int{100}, "One Zero Zero"},
		{"min", []int{4, -2, 8}, "-2"},
	}
	for _, tc := range tests {
		res, err := engine.Evaluate(tt.Query{Op: tc.op, Args: tc.args})
		require.NoError(t, err, "%s %v", tc.op, tc.args)
		assert.Equal(t, tc.value, res.Value, "%s %v", tc.op, tc.args)
		assert.False(t, res.Failed())
	}
}

func TestEngine_EvaluateInvalid(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil)
	require.NoError(t, err)

	for _, q := range []tt.Query{
		{Op: "days", Args: []int{13, 2023}},
		{Op: "days", Args: []int{1, 10000}},
		{Op: "days", Args: []int{1}},
		{Op: "leap", Args: []int{0}},
		{Op: "min"},
		{Op: "words", Args: []int{-1}},
		{Op: "reverse", Args: []int{1999999999999999999}},
		{Op: "unknown", Args: []int{1}},
	} {
		_, err := engine.Evaluate(q)
		assert.ErrorIs(t, err, tt.ErrInvalidInput, "%s %v", q.Op, q.Args)
	}
}

func TestEngine_Run(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "engine_run")
	path := writeBatch(t, dir, "q.days", `# sample
days 2 2000
days 13 2023
leap 10000   # nolint
leap abc
min 5 3 9
words -4     # nolint:words
`)

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	results, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "29", results[0].Value)
	assert.Equal(t, 2, results[0].Line)

	assert.Equal(t, "days", results[1].Op)
	assert.True(t, results[1].Failed())
	assert.Equal(t, tt.SeverityError, results[1].Severity)
	assert.Equal(t, path, results[1].Filename)
	assert.Equal(t, 3, results[1].Line)

	assert.Equal(t, ParseRule, results[2].Op)
	assert.Equal(t, 5, results[2].Line)

	assert.Equal(t, "3", results[3].Value)
}

func TestEngine_ParseFindingsFollowNolintAndIgnores(t *testing.T) {
	t.Parallel()
	src := []byte("leap abc   # nolint\nleap x1    # nolint:parse\ndays 2 y   # nolint:days\n")

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	results, err := engine.RunSource(src)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ParseRule, results[0].Op)
	assert.Equal(t, 3, results[0].Line)

	engine.IgnoreRule(ParseRule)
	results, err = engine.RunSource([]byte("leap abc\nleap 2000\n"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "true", results[0].Value)
}

func TestEngine_ParseRuleConfig(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigRule{ParseRule: {Severity: tt.SeverityWarning}})
	require.NoError(t, err)
	assert.Equal(t, tt.SeverityWarning, engine.Severities()[ParseRule])

	results, err := engine.RunSource([]byte("leap abc\n"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, tt.SeverityWarning, results[0].Severity)

	engine, err = NewEngine(map[string]tt.ConfigRule{ParseRule: {Severity: tt.SeverityOff}})
	require.NoError(t, err)
	results, err = engine.RunSource([]byte("leap abc\n"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngine_RunIgnored(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "engine_ignored")
	path := writeBatch(t, dir, "q.days", "days 13 1\nleap 2000\n")

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	engine.IgnoreRule("days")

	results, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "leap", results[0].Op)

	engine.IgnorePath(dir)
	results, err = engine.Run(path)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngine_RunMissingFile(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil)
	require.NoError(t, err)

	_, err = engine.Run(filepath.Join(createTempDir(t, "missing"), "nope.days"))
	assert.Error(t, err)
}

func TestEngine_RunSource(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(map[string]tt.ConfigRule{"digitsum": {Severity: tt.SeverityWarning}})
	require.NoError(t, err)

	results, err := engine.RunSource([]byte("digitsum -5\nreverse 120\n"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, tt.SeverityWarning, results[0].Severity)
	assert.Equal(t, "21", results[1].Value)
	assert.Empty(t, results[1].Filename)
}

func TestReadSourceCode(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "source")
	path := writeBatch(t, dir, "q.days", "leap 4\nleap 5")

	src, err := ReadSourceCode(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"leap 4", "leap 5"}, src.Lines)
}
