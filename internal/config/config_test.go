package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellout/spellabet"
)

var envVars = []string{
	"SPELLOUT_ALPHABET",
	"SPELLOUT_OVERRIDES",
	"SPELLOUT_OVERRIDES_FILE",
	"SPELLOUT_NONCE_FORM",
	"SPELLOUT_VERBOSE",
	"SPELLOUT_LOG_LEVEL",
	"SPELLOUT_LOG_FORMAT",
}

// clearEnv blanks every SPELLOUT_* variable; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("spellout", pflag.ContinueOnError)
	fs.StringP("alphabet", "a", "nato", "")
	fs.StringP("overrides", "o", "", "")
	fs.String("overrides-file", "", "")
	fs.BoolP("nonce-form", "n", false, "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("log-level", "warn", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, spellabet.Nato, cfg.Alphabet)
	assert.Empty(t, cfg.Overrides)
	assert.Empty(t, cfg.OverridesFile)
	assert.False(t, cfg.NonceForm)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
alphabet: royal-navy
overrides: "a=apple,b=banana"
overrides_file: /tmp/words.yaml
nonce_form: true
log:
  level: debug
  format: json
`)
	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)

	assert.Equal(t, spellabet.RoyalNavy, cfg.Alphabet)
	assert.Equal(t, "a=apple,b=banana", cfg.Overrides)
	assert.Equal(t, "/tmp/words.yaml", cfg.OverridesFile)
	assert.True(t, cfg.NonceForm)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "alphabet: jan\nnonce_form: true\n")

	t.Setenv("SPELLOUT_ALPHABET", "western_union")
	t.Setenv("SPELLOUT_NONCE_FORM", "off")
	t.Setenv("SPELLOUT_VERBOSE", "yes")
	t.Setenv("SPELLOUT_LOG_LEVEL", "error")

	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)

	assert.Equal(t, spellabet.WesternUnion, cfg.Alphabet)
	assert.False(t, cfg.NonceForm)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPELLOUT_ALPHABET", "jan")
	t.Setenv("SPELLOUT_OVERRIDES", "a=apple")

	cfg, err := Load("", testFlags(t, "-a", "lapd", "--overrides", "b=banana", "-n", "--log-level", "info"))
	require.NoError(t, err)

	assert.Equal(t, spellabet.Lapd, cfg.Alphabet)
	assert.Equal(t, "b=banana", cfg.Overrides)
	assert.True(t, cfg.NonceForm)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_UnsetFlagsKeepEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPELLOUT_ALPHABET", "us-financial")

	cfg, err := Load("", testFlags(t, "-v"))
	require.NoError(t, err)

	assert.Equal(t, spellabet.UsFinancial, cfg.Alphabet)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "alphabet: [broken"), nil)
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "alphabet: klingon\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown spelling alphabet")

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"), nil)
	assert.EqualError(t, err, "log.level must be debug, info, warn or error")

	_, err = Load(writeConfig(t, "log:\n  format: xml\n"), nil)
	assert.EqualError(t, err, "log.format must be text or json")
}

func TestIsFalsey(t *testing.T) {
	for _, s := range []string{"", "0", "f", "false", "FALSE", "n", "no", "No", "off", " off "} {
		assert.True(t, IsFalsey(s), "%q", s)
	}
	for _, s := range []string{"1", "t", "true", "y", "yes", "on", "anything"} {
		assert.False(t, IsFalsey(s), "%q", s)
	}
}

func TestSetupLogger(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	SetupLogger(cfg, &buf).Debug("converted", "chars", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "converted", rec["msg"])
	assert.EqualValues(t, 3, rec["chars"])

	buf.Reset()
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	logger := SetupLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.True(t, strings.Contains(buf.String(), "level=WARN msg=shown"))
}
