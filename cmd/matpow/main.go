// SPDX-License-Identifier: MIT

// Command matpow raises a complex scalar to a complex matrix power.
//
//	matpow [input [output]]
package main

import (
	"os"

	"github.com/katalvlaran/matpow/cmd/matpow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
