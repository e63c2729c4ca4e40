//go:build linux

package hwaddr

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// NetlinkLookup reads interface attributes through a netlink socket, the
// same channel udev itself uses. It needs no special privileges for a
// read-only link query.
type NetlinkLookup struct{}

func NewSystemLookup() *NetlinkLookup {
	return &NetlinkLookup{}
}

func (l *NetlinkLookup) MacByInterfaceName(name string) (MacAddress, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return "", fmt.Errorf("find link %q: %w", name, err)
	}
	return FromHardwareAddr(link.Attrs().HardwareAddr)
}
