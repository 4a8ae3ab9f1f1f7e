// Package main is the entry point for the pocketsmith CLI.
package main

import (
	"os"

	"github.com/lextoumbourou/pocketsmith-skill/cmd/pocketsmith/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
