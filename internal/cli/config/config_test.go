package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the flags the CLI registers.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "")
	fs.String("log-format", "", "")
	fs.Int("port", 0, "")
	fs.Bool("dev", false, "")
	fs.String("docs-url", "", "")
	fs.String("watch-dir", "", "")
	fs.String("output", "", "")
	fs.Bool("minify", false, "")
	fs.String("format", "auto", "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anatomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.UI.Port, cfg.UI.Port)
	assert.Equal(t, DefaultOutputDir, cfg.Build.Output)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.UI.Dev)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
verbose: true
log_format: json
site:
  title: Handbook
ui:
  port: 9000
  docs_url: https://docs.example.com
build:
  output: dist
  minify: true
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, "Handbook", cfg.Site.Title)
	assert.Equal(t, 9000, cfg.UI.Port)
	assert.Equal(t, "https://docs.example.com", cfg.UI.DocsURL)
	assert.Equal(t, "dist", cfg.Build.Output)
	assert.True(t, cfg.Build.Minify)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadConfig_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anatomy.yml"), []byte("ui:\n  port: 7000\n"), 0600))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.UI.Port)
	assert.Equal(t, "anatomy.yml", cfg.ConfigFile)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeConfig(t, "ui:\n  port: 9000\nbuild:\n  output: from-file\n")

	tests := []struct {
		name       string
		env        map[string]string
		flags      []string
		wantPort   int
		wantOutput string
	}{
		{name: "file over defaults", wantPort: 9000, wantOutput: "from-file"},
		{
			name:       "env over file",
			env:        map[string]string{"ANATOMY_UI__PORT": "9100", "ANATOMY_BUILD__OUTPUT": "from-env"},
			wantPort:   9100,
			wantOutput: "from-env",
		},
		{
			name:       "flags over env",
			env:        map[string]string{"ANATOMY_UI__PORT": "9100"},
			flags:      []string{"--port", "9200", "--output", "from-flag"},
			wantPort:   9200,
			wantOutput: "from-flag",
		},
		{
			name:       "unset flags keep lower layers",
			env:        map[string]string{"ANATOMY_UI__PORT": "9100"},
			flags:      []string{"--dev"},
			wantPort:   9100,
			wantOutput: "from-file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := newFlags()
			require.NoError(t, fs.Parse(tt.flags))

			cfg, err := LoadConfig(path, fs)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPort, cfg.UI.Port)
			assert.Equal(t, tt.wantOutput, cfg.Build.Output)
		})
	}
}

func TestLoadConfig_IgnoresUnknownEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANATOMY_SOMETHING_ELSE", "x")

	_, err := LoadConfig("", nil)
	assert.NoError(t, err)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		errSub  string
	}{
		{name: "unknown key", content: "ui:\n  prot: 9000\n", errSub: "prot"},
		{name: "port out of range", content: "ui:\n  port: 70000\n", wantErr: ErrInvalidPort},
		{name: "bad log format", content: "log_format: xml\n", wantErr: ErrInvalidLogFormat},
		{name: "malformed yaml", content: "ui: [\n", errSub: "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errSub != "" {
				assert.Contains(t, err.Error(), tt.errSub)
			}
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.UI.Port = 0 }, wantErr: ErrInvalidPort},
		{name: "max port", mutate: func(c *Config) { c.UI.Port = 65535 }},
		{name: "json logs", mutate: func(c *Config) { c.LogFormat = LogFormatJSON }},
		{name: "empty log format", mutate: func(c *Config) { c.LogFormat = "" }, wantErr: ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, LogFormatJSON, true).Debug("hello", "key", "value")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "value", rec["key"])

	buf.Reset()
	NewLogger(&buf, LogFormatText, false).Debug("hidden")
	assert.Empty(t, buf.String(), "debug is off unless verbose")
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.UI.Port = 1234
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))

	var buf bytes.Buffer
	logger := NewLogger(&buf, LogFormatText, false)
	assert.Same(t, logger, GetLogger(WithLogger(ctx, logger)))
}
