// Package config assembles the runtime settings of a resolution run from
// defaults, the optional config file, the environment, and positional
// test overrides, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ErrInterfaceNotSet means the udev environment contract is broken: the
// caller did not export the interface name being renamed.
var ErrInterfaceNotSet = errors.New("environment variable INTERFACE is not set")

// Settings carries everything a resolution run needs. Test overrides are
// explicit fields here rather than argument-count checks sprinkled over
// the resolution path.
type Settings struct {
	// Interface is the kernel-assigned name udev handed over.
	Interface string

	// CmdlinePath and ConfigDir are the two sources searched for a
	// persistent name.
	CmdlinePath string
	ConfigDir   string

	// MacOverride, when set, replaces the netlink lookup of Interface's
	// hardware address. Tests use it to run against fixture trees.
	MacOverride string

	LogLevel string
	LogJSON  bool
}

// Load builds Settings. args are the positional command-line arguments:
// either none, or exactly three (cmdline-path, config-dir, mac-address)
// to redirect the run at fixtures. Partial overrides are rejected so a
// run can never mix fixture and system sources by accident.
func Load(args []string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("cmdline_path", DefaultKernelCmdline)
	v.SetDefault("config_dir", DefaultConfigDir)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)

	configFile := os.Getenv(ConfigFileEnv)
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; only a present-but-broken one stops
		// the run.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if err := v.BindEnv("interface", InterfaceEnv); err != nil {
		return nil, fmt.Errorf("bind %s: %w", InterfaceEnv, err)
	}
	if err := v.BindEnv("log_level", "RENAME_DEVICE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind RENAME_DEVICE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("log_json", "RENAME_DEVICE_LOG_JSON"); err != nil {
		return nil, fmt.Errorf("bind RENAME_DEVICE_LOG_JSON: %w", err)
	}

	settings := &Settings{
		Interface:   v.GetString("interface"),
		CmdlinePath: v.GetString("cmdline_path"),
		ConfigDir:   v.GetString("config_dir"),
		LogLevel:    v.GetString("log_level"),
		LogJSON:     v.GetBool("log_json"),
	}

	switch len(args) {
	case 0:
	case 3:
		settings.CmdlinePath = args[0]
		settings.ConfigDir = args[1]
		settings.MacOverride = args[2]
	default:
		return nil, fmt.Errorf("expected no arguments or exactly 3 (cmdline-path, config-dir, mac-address), got %d", len(args))
	}

	return settings, nil
}
