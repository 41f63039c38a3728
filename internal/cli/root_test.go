package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/anatomy/internal/cli/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := []string{"build", "completion", "render", "serve", "version"}
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	for _, flag := range []string{"config", "verbose", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmd_Version(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "anatomy v"+Version)
}

func TestRootCmd_RenderMarkdown(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := execute(t, "render", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# The Anatomy of Excellence")
}

func TestRootCmd_BuildUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "anatomy.yaml"), []byte(`
site:
  title: Handbook
build:
  output: site-out
`), 0600))

	_, stderr, err := execute(t, "build", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using config file")

	index, err := os.ReadFile(filepath.Join(dir, "site-out", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<title>Handbook</title>")
}

func TestRootCmd_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anatomy.yaml"), []byte("build:\n  output: from-file\n"), 0600))

	_, _, err := execute(t, "build", "-o", "from-flag")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "from-flag", "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "from-file"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		wantErr error
	}{
		{name: "invalid port", content: "ui:\n  port: 0\n", args: []string{"render"}, wantErr: config.ErrInvalidPort},
		{name: "invalid log format", args: []string{"render", "--log-format", "xml"}, wantErr: config.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "anatomy.yaml"), []byte(tt.content), 0600))
			}

			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRootCmd_Completion(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "anatomy")
}
