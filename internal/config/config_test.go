package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points the config file lookup at a path that does not exist and
// clears the env contract, so tests never read the host's real files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv(InterfaceEnv, "")
	t.Setenv("RENAME_DEVICE_LOG_LEVEL", "")
	t.Setenv("RENAME_DEVICE_LOG_JSON", "")
}

func TestLoad(t *testing.T) {
	t.Run("defaults point at the live system", func(t *testing.T) {
		isolate(t)

		settings, err := Load(nil)
		require.NoError(t, err)
		require.Empty(t, settings.Interface)
		require.Equal(t, DefaultKernelCmdline, settings.CmdlinePath)
		require.Equal(t, DefaultConfigDir, settings.ConfigDir)
		require.Empty(t, settings.MacOverride)
		require.Equal(t, "info", settings.LogLevel)
		require.False(t, settings.LogJSON)
	})

	t.Run("reads the interface from the environment", func(t *testing.T) {
		isolate(t)
		t.Setenv(InterfaceEnv, "eth0")

		settings, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, "eth0", settings.Interface)
	})

	t.Run("reads log settings from the environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("RENAME_DEVICE_LOG_LEVEL", "debug")
		t.Setenv("RENAME_DEVICE_LOG_JSON", "true")

		settings, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, "debug", settings.LogLevel)
		require.True(t, settings.LogJSON)
	})

	t.Run("three positional arguments redirect the run", func(t *testing.T) {
		isolate(t)

		settings, err := Load([]string{"/tmp/cmdline", "/tmp/scripts", "aa:bb:cc:dd:ee:1f"})
		require.NoError(t, err)
		require.Equal(t, "/tmp/cmdline", settings.CmdlinePath)
		require.Equal(t, "/tmp/scripts", settings.ConfigDir)
		require.Equal(t, "aa:bb:cc:dd:ee:1f", settings.MacOverride)
	})

	t.Run("partial overrides are rejected", func(t *testing.T) {
		isolate(t)

		for _, args := range [][]string{
			{"/tmp/cmdline"},
			{"/tmp/cmdline", "/tmp/scripts"},
			{"/tmp/cmdline", "/tmp/scripts", "aa:bb:cc:dd:ee:1f", "extra"},
		} {
			_, err := Load(args)
			require.Error(t, err)
		}
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(
			"cmdline_path = \"/boot/cmdline\"\nconfig_dir = \"/srv/scripts\"\nlog_level = \"debug\"\n"), 0o644))
		t.Setenv(ConfigFileEnv, path)

		settings, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, "/boot/cmdline", settings.CmdlinePath)
		require.Equal(t, "/srv/scripts", settings.ConfigDir)
		require.Equal(t, "debug", settings.LogLevel)
	})

	t.Run("positional arguments beat the config file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("config_dir = \"/srv/scripts\"\n"), 0o644))
		t.Setenv(ConfigFileEnv, path)

		settings, err := Load([]string{"/tmp/cmdline", "/tmp/scripts", "aa:bb:cc:dd:ee:1f"})
		require.NoError(t, err)
		require.Equal(t, "/tmp/scripts", settings.ConfigDir)
	})

	t.Run("broken config file stops the run", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("log_level = [unterminated\n"), 0o644))
		t.Setenv(ConfigFileEnv, path)

		_, err := Load(nil)
		require.Error(t, err)
	})
}
