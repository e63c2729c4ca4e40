package config

// InterfaceEnv names the environment variable through which udev hands
// over the kernel-assigned name of the interface being renamed.
const InterfaceEnv string = "INTERFACE"

// The values below are the well-known system locations consulted during
// resolution. The config file may override them, and integration tests do
// so through positional arguments.

// DefaultKernelCmdline is where the kernel exposes its boot command line.
const DefaultKernelCmdline string = "/proc/cmdline"

// DefaultConfigDir holds the legacy ifcfg-* interface configurations.
const DefaultConfigDir string = "/etc/sysconfig/network-scripts"

// DefaultConfigFile is the optional tool configuration. It is normally
// absent, and early boot must work without it.
const DefaultConfigFile string = "/etc/rename-device/config.toml"

// ConfigFileEnv overrides where the tool configuration is read from.
const ConfigFileEnv string = "RENAME_DEVICE_CONFIG"
