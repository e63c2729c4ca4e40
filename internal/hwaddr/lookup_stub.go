//go:build !linux

package hwaddr

// NoOpLookup stands in on platforms without netlink. The resolver still
// works there through the explicit MAC override.
type NoOpLookup struct{}

func NewSystemLookup() *NoOpLookup {
	return &NoOpLookup{}
}

func (l *NoOpLookup) MacByInterfaceName(name string) (MacAddress, error) {
	return "", ErrLookupUnsupported
}
