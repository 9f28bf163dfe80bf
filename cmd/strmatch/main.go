// Package main provides the entry point for the strmatch CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/strmatch/cmd/strmatch/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
