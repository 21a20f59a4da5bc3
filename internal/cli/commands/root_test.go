package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no sigc.yml is picked up
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	return dir
}

// run executes the root command with args and returns stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--no-color", "--log-level", "off"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "sigc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	registered := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, expected := range []string{"version", "parse", "tokens", "check", "lsp", "completion"} {
		assert.True(t, registered[expected], "expected command %s to be registered", expected)
	}

	for _, flag := range []string{"no-color", "log-level", "trace"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	Version = "1.0.0-test"
	GitCommit = "abc123"
	BuildDate = "2025-01-01"
	GoVersion = "go1.23"
	t.Cleanup(func() {
		Version, GitCommit, BuildDate, GoVersion = "dev", "unknown", "unknown", "unknown"
	})

	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)

	assert.Equal(t, "sigc version: 1.0.0-test\nGit commit: abc123\nBuild date: 2025-01-01\nGo version: go1.23\n", stdout)
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bash completion")

	_, _, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestCompleteSourceArguments(t *testing.T) {
	t.Run("default extension", func(t *testing.T) {
		inTempDir(t)

		exts, directive := completeSourceFile(nil, nil, "")
		assert.Equal(t, []string{"sig"}, exts)
		assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)

		_, directive = completeSourceFile(nil, []string{"main.sig"}, "")
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("configured extension", func(t *testing.T) {
		inTempDir(t)
		require.NoError(t, os.WriteFile("sigc.yml", []byte("source_extension: .sg\n"), 0644))

		exts, directive := completeSourcePaths(nil, []string{"a.sg"}, "")
		assert.Equal(t, []string{"sg"}, exts)
		assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
	})
}

func TestInvalidConfig(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("sigc.yml", []byte("output:\n  format: xml\n"), 0644))

	_, stderr, err := run(t, "PROGRAM x; BEGIN END.", "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, stderr, "CONFIGURATION ERROR")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	inTempDir(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("PROGRAM x; BEGIN END."))
	cmd.SetArgs([]string{"parse", "--log-level", "chatty"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
