package sysconfig

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/jamacku/rename-device/internal/hwaddr"
)

// The two keys that matter in an ifcfg file. Leading and trailing
// whitespace around the assignment is tolerated; a line that deviates in
// any other way (quotes, inline comments, oversized names) is not
// significant. Values stay within the kernel IFNAMSIZ limit.
var (
	devicePattern = regexp.MustCompile(`^\s*DEVICE=([^\s:]{1,15})\s*$`)
	hwaddrPattern = regexp.MustCompile(`^\s*HWADDR=([0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})\s*$`)
)

// ParseFile reads one ifcfg file and returns the DEVICE name it binds to
// target. The last occurrence of each key wins, matching how the shell
// sourced these files historically. The name is returned only when the
// file names a HWADDR equal to target and carries a DEVICE line; any
// other combination is a miss (ok=false), so a file for a different
// interface can never leak its name. An unreadable file is an error and
// left to the caller to skip.
func ParseFile(path string, target hwaddr.MacAddress) (string, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open ifcfg file: %w", err)
	}
	defer file.Close()

	var device, rawMac string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if m := devicePattern.FindStringSubmatch(line); m != nil {
			device = m[1]
			continue
		}
		if m := hwaddrPattern.FindStringSubmatch(line); m != nil {
			rawMac = m[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("read ifcfg file %s: %w", path, err)
	}

	if rawMac == "" {
		return "", false, nil
	}
	mac, err := hwaddr.Normalize(rawMac)
	if err != nil {
		// hwaddrPattern and Normalize agree on the address shape, so this
		// only fires if one of them changes without the other.
		return "", false, fmt.Errorf("ifcfg file %s: %w", path, err)
	}
	if mac != target || device == "" {
		return "", false, nil
	}
	return device, true, nil
}
