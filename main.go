// oscwire is a command line toolkit for sending, receiving, and
// monitoring Open Sound Control traffic over UDP.
package main

import (
	"fmt"
	"os"

	"github.com/openmix/oscwire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
