package hwaddr

import "errors"

var ErrLookupUnsupported = errors.New("hardware address lookup not supported on this platform")

// Lookup resolves the hardware address of a network interface on the
// running system.
type Lookup interface {
	// MacByInterfaceName returns the canonical MAC address of the named
	// interface, or an error if the interface does not exist or carries
	// no usable hardware address.
	MacByInterfaceName(name string) (MacAddress, error)
}
