package main

import (
	"fmt"
	"os"

	"github.com/jamacku/rename-device/cmd"
)

func main() {
	// Exit status 1 is the whole protocol with udev: any failure means
	// "no persistent name for this device", and the kernel name stays.
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
