// Package resolver runs the priority-ordered search for a device's
// persistent name: kernel cmdline hints first, legacy ifcfg files second.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/jamacku/rename-device/internal/cmdline"
	"github.com/jamacku/rename-device/internal/hwaddr"
	"github.com/jamacku/rename-device/internal/logger"
	"github.com/jamacku/rename-device/internal/sysconfig"
)

var (
	// ErrNoConfigFiles means the ifcfg directory had nothing to search
	// after the cmdline source came up empty.
	ErrNoConfigFiles = errors.New("no ifcfg files found")

	// ErrNameNotFound is the terminal miss: every source was searched and
	// none binds the address to a name.
	ErrNameNotFound = errors.New("device name not found")
)

// kernelNamePattern matches names the kernel hands out on its own (eth0,
// eth12, ...). Persisting one invites a collision with kernel enumeration
// on the next boot.
var kernelNamePattern = regexp.MustCompile(`^eth[0-9]+$`)

// IsKernelName reports whether name is a default kernel interface name:
// "eth" followed by decimal digits and nothing else.
func IsKernelName(name string) bool {
	return kernelNamePattern.MatchString(name)
}

// Resolve returns the persistent name configured for the interface with
// hardware address target. The kernel cmdline at cmdlinePath is consulted
// first; on a hit the ifcfg directory is never touched. Otherwise each
// ifcfg file under configDir is tried in order and the first one binding
// target to a DEVICE name wins. An unreadable cmdline only falls through
// while the ifcfg source remains; a file that cannot be parsed fatally
// (a hardware address the parser extracted but cannot normalize) aborts
// the whole run rather than silently yielding a worse candidate.
func Resolve(ctx context.Context, target hwaddr.MacAddress, cmdlinePath, configDir string) (string, error) {
	log := logger.FromContext(ctx)

	name, ok, err := cmdline.FindDeviceName(cmdlinePath, target)
	switch {
	case err != nil:
		log.Debug().Err(err).Str("path", cmdlinePath).Msg("Kernel cmdline could not be read")
	case ok:
		warnKernelName(log, name)
		return name, nil
	default:
		log.Debug().Str("mac", target.String()).Msg("New device name wasn't found at kernel cmdline")
	}

	paths := sysconfig.List(configDir)
	if len(paths) == 0 {
		return "", fmt.Errorf("%w in directory %s", ErrNoConfigFiles, configDir)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name, ok, err := sysconfig.ParseFile(path, target)
		if err != nil {
			if errors.Is(err, hwaddr.ErrInvalidFormat) {
				return "", err
			}
			log.Debug().Err(err).Str("path", path).Msg("Skipping unreadable ifcfg file")
			continue
		}
		if !ok {
			log.Debug().Str("path", path).Msg("No matching HWADDR in ifcfg file")
			continue
		}
		warnKernelName(log, name)
		return name, nil
	}

	return "", ErrNameNotFound
}

func warnKernelName(log *zerolog.Logger, name string) {
	if IsKernelName(name) {
		log.Warn().Msgf("Don't use kernel names (eth0, etc.) as new names for network devices! Used name: '%s'", name)
	}
}
