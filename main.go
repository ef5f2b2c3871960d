// Package main is the entry point for the selectest CLI.
package main

import "selectest.dev/pkg/selectest/cmd"

func main() {
	cmd.Execute()
}
