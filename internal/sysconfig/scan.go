// Package sysconfig searches legacy ifcfg files for a DEVICE name bound
// to a hardware address. These files predate systemd-networkd and
// NetworkManager keyfiles but remain the authority on systems that still
// carry them.
package sysconfig

import (
	"os"
	"path/filepath"
)

// Pattern matches the interface configuration files searched for DEVICE
// bindings. Backup files like ifcfg-eth0.bak also match; their HWADDR
// check decides whether they contribute anything.
const Pattern = "ifcfg-*"

// List returns the ifcfg entries directly under dir in lexical order, so
// repeated runs over the same tree visit candidates identically. An
// unreadable or empty directory yields an empty list; whether that is
// fatal is the caller's call.
func List(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if ok, err := filepath.Match(Pattern, entry.Name()); err != nil || !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}
