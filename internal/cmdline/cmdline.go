// Package cmdline extracts device naming hints from the kernel boot
// command line. Hints use the dracut convention ifname=<name>:<mac>,
// written by the installer or the administrator to pin a name to a
// hardware address before userspace is up.
package cmdline

import (
	"fmt"
	"os"
	"regexp"

	"github.com/jamacku/rename-device/internal/hwaddr"
)

// ifnamePattern captures one naming hint: a device name of 1 to 15
// characters (no colons, no whitespace, kernel IFNAMSIZ limit) bound to a
// colon-separated hardware address.
var ifnamePattern = regexp.MustCompile(`ifname=([^\s:]{1,15}):([0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})`)

// FindDeviceName scans the kernel command line at path for ifname= hints
// and returns the name bound to target. Hints are examined left to right
// and the first one whose address equals target wins, so a duplicated
// hint cannot override an earlier one. The second return is false when no
// hint matches, which is the common case and not an error; only failing
// to read the file is.
func FindDeviceName(path string, target hwaddr.MacAddress) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("read kernel cmdline: %w", err)
	}

	for _, hint := range ifnamePattern.FindAllStringSubmatch(string(data), -1) {
		mac, err := hwaddr.Normalize(hint[2])
		if err != nil {
			// The pattern already constrains the shape, so a fragment that
			// still fails to normalize is skipped rather than fatal.
			continue
		}
		if mac == target {
			return hint[1], true, nil
		}
	}
	return "", false, nil
}
