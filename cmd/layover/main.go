// Command layover finds the cheapest route between two nodes of a
// surcharge-weighted flight network, from the terminal or over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
