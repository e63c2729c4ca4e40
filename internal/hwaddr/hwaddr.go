// Package hwaddr defines the canonical MAC address form used for every
// comparison in the resolver, and the lookup of a live interface's address
// from the kernel.
package hwaddr

import (
	"errors"
	"fmt"
	"net"
	"regexp"
)

var ErrInvalidFormat = errors.New("invalid MAC address format")

// macPattern accepts exactly six 2-hex-digit groups joined by colons.
// Other notations (dashes, dots, EUI-64) are rejected on purpose: ifcfg
// files and the kernel cmdline only ever carry this form.
var macPattern = regexp.MustCompile(`^[0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5}$`)

// MacAddress is a hardware address in canonical form: lowercase hex pairs
// joined by ":". Two addresses are equal iff their canonical forms are,
// so values can be compared with ==.
type MacAddress string

func (m MacAddress) String() string {
	return string(m)
}

// Normalize parses raw into a MacAddress. Hex digits may be either case;
// anything that is not six colon-separated pairs fails with
// ErrInvalidFormat. Normalizing an already canonical address returns it
// unchanged.
func Normalize(raw string) (MacAddress, error) {
	if !macPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	hw, err := net.ParseMAC(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	return MacAddress(hw.String()), nil
}

// FromHardwareAddr converts an address handed out by the OS. Interfaces
// without a 48-bit address (loopback, tunnels) are rejected.
func FromHardwareAddr(hw net.HardwareAddr) (MacAddress, error) {
	if len(hw) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, hw.String())
	}
	return MacAddress(hw.String()), nil
}
