// Package main is the entry point for the fleet monitor.
package main

import "fleetmon/cmd/fleetmon/cmd"

func main() {
	cmd.Execute()
}
