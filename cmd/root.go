// Package cmd wires the command line, the environment contract with
// udev, and the single process exit boundary. Everything below it
// reports errors; only this package decides what the process does about
// them.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jamacku/rename-device/internal/config"
	"github.com/jamacku/rename-device/internal/hwaddr"
	"github.com/jamacku/rename-device/internal/logger"
	"github.com/jamacku/rename-device/internal/resolver"
	"github.com/jamacku/rename-device/internal/utils"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// systemLookup is swappable so tests can exercise the full flow without
// netlink access to real interfaces.
var systemLookup hwaddr.Lookup = hwaddr.NewSystemLookup()

func NewRootCommand() *cobra.Command {
	var (
		logLevel string
		logJSON  bool
	)

	rootCmd := &cobra.Command{
		Use:   "rename-device [cmdline-path config-dir mac-address]",
		Short: "Resolve the persistent name of a network interface from its MAC address",
		Long: `rename-device is a udev helper. Given the interface name the kernel
assigned (environment variable INTERFACE), it looks up the interface's
MAC address and searches the kernel cmdline's ifname= hints and the
legacy ifcfg files for the name the administrator bound to that
address. On success the name is printed on stdout; diagnostics go to
stderr. The three optional arguments redirect the search at fixture
files and replace the MAC lookup, which integration tests rely on.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env beside the binary can stand in for udev's environment
			// when debugging by hand; absence is the normal case.
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(args)
			if err != nil {
				_, log := logger.InitLogger(cmd.Context(), "info", false)
				log.Error().Err(err).Msg("Invalid configuration")
				return err
			}
			if cmd.Flags().Changed("log-level") {
				settings.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-json") {
				settings.LogJSON = logJSON
			}

			ctx, _ := logger.InitLogger(cmd.Context(), settings.LogLevel, settings.LogJSON)
			return run(ctx, settings, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "diagnostic verbosity (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "emit diagnostics as JSON instead of console text")
	return rootCmd
}

func Execute() error {
	ctx, cancel := utils.SetupContext(context.Background())
	defer cancel()
	return NewRootCommand().ExecuteContext(ctx)
}

// run performs one resolution. It returns an error for every failure
// mode; the caller turns any error into exit status 1, which udev reads
// as "no name for this device".
func run(ctx context.Context, settings *config.Settings, out io.Writer) error {
	log := logger.FromContext(ctx)

	iface := settings.Interface
	if iface == "" {
		log.Error().Msgf("Fail obtaining ENV %s", config.InterfaceEnv)
		return config.ErrInterfaceNotSet
	}

	target, err := targetMac(settings)
	if err != nil {
		if settings.MacOverride != "" {
			log.Error().Err(err).Msg("Invalid MAC address override")
		} else {
			log.Error().Err(err).Msgf("Fail to resolve MAC address of '%s'", iface)
		}
		return err
	}

	name, err := resolver.Resolve(ctx, target, settings.CmdlinePath, settings.ConfigDir)
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrNoConfigFiles):
			log.Error().Msgf("Fail to get list of ifcfg files from directory %s", settings.ConfigDir)
		case errors.Is(err, resolver.ErrNameNotFound):
			log.Error().Msg("Device name or MAC address weren't found in ifcfg files.")
		default:
			log.Error().Err(err).Msg("Device name resolution failed")
		}
		return err
	}

	fmt.Fprintln(out, name)
	return nil
}

// targetMac decides which hardware address the search is for: the
// explicit override when present, otherwise the live address of the
// interface udev named.
func targetMac(settings *config.Settings) (hwaddr.MacAddress, error) {
	if settings.MacOverride != "" {
		return hwaddr.Normalize(settings.MacOverride)
	}
	return systemLookup.MacByInterfaceName(settings.Interface)
}
