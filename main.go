// Package main is the entry point for the riftmetrics CLI tool, which reads
// pre-fetched League of Legends match JSON and computes personal performance
// analytics for the tracked player.
package main

import "github.com/riftlab/riftmetrics/cmd"

func main() {
	cmd.Execute()
}
