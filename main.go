// Package main is the entry point for the evidencija CLI.
package main

import (
	"evidencija/cli/cmd"
)

func main() {
	cmd.Execute()
}
