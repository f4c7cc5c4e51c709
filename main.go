// Package main is the entry point for the mutagene CLI.
package main

import "mutagene.dev/pkg/mutagene/cmd"

func main() {
	cmd.Execute()
}
