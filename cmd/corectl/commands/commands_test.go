package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-service-core/command"
	"github.com/MKhiriev/go-service-core/errs"
	"github.com/MKhiriev/go-service-core/settings"
)

// invoke registers c alone, parses c's name followed by args and dispatches.
func invoke(t *testing.T, c command.Command, s *settings.Settings, args ...string) (string, error) {
	t.Helper()

	cmds := []command.Command{c}
	root, err := command.ConfigureAll("corectl", "", cmds)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)

	m, err := command.Parse(root, append([]string{c.Name()}, args...))
	require.NoError(t, err)

	err = command.HandleAll(context.Background(), m, cmds, s)
	return out.String(), err
}

func loadedSettings() *settings.Settings {
	s := settings.Default()
	s.Config.Location = "/etc/corectl.json"
	s.Config.EnvPrefix = "corectl"
	s.Database.URL = "postgres://db"
	return s
}

// ── All ───────────────────────────────────────────────────────────────────────

func TestAll_NamesAreUnique(t *testing.T) {
	_, err := command.ConfigureAll("corectl", "", All(BuildInfo{}))
	assert.NoError(t, err)
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion_PrintsBuildInfo(t *testing.T) {
	out, err := invoke(t, NewVersion(BuildInfo{Version: "1.2.3", Commit: "abc123"}), settings.Default())
	require.NoError(t, err)

	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: abc123\n", out)
}

// ── settings ──────────────────────────────────────────────────────────────────

func TestSettings_JSON(t *testing.T) {
	out, err := invoke(t, NewSettings(), loadedSettings())
	require.NoError(t, err)

	var got settings.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, *loadedSettings(), got)
}

func TestSettings_Text(t *testing.T) {
	out, err := invoke(t, NewSettings(), loadedSettings(), "--format", "text")
	require.NoError(t, err)

	assert.Equal(t,
		"config.env_prefix = corectl\n"+
			"config.location = /etc/corectl.json\n"+
			"database.url = postgres://db\n"+
			"logging.log_level = info\n",
		out)
}

func TestSettings_UnsupportedFormat(t *testing.T) {
	_, err := invoke(t, NewSettings(), loadedSettings(), "-f", "xml")

	assert.ErrorIs(t, err, errs.ErrCommand)
	assert.Contains(t, err.Error(), "xml")
}

// ── check ─────────────────────────────────────────────────────────────────────

func TestCheck_Valid(t *testing.T) {
	out, err := invoke(t, NewCheck(), loadedSettings(), "--require-database")
	require.NoError(t, err)
	assert.Equal(t, "settings OK\n", out)
}

func TestCheck_InvalidSettings(t *testing.T) {
	s := loadedSettings()
	s.Logging.LogLevel = "chatty"

	_, err := invoke(t, NewCheck(), s)
	assert.ErrorIs(t, err, errs.ErrConfig)
	assert.ErrorIs(t, err, settings.ErrInvalidLoggingConfigs)
}

func TestCheck_RequireDatabase(t *testing.T) {
	s := loadedSettings()
	s.Database.URL = ""

	_, err := invoke(t, NewCheck(), s)
	require.NoError(t, err)

	_, err = invoke(t, NewCheck(), s, "--require-database")
	assert.ErrorIs(t, err, errs.ErrEnv)
	assert.Contains(t, err.Error(), "CORECTL__DATABASE__URL")
}
