// Package main provides a banner entry point for apexsim.
// apexsim is a cycle-accurate APEX five-stage instruction pipeline simulator.
//
// For the full CLI, use: go run ./cmd/apexsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("apexsim - APEX Pipeline Simulator")
	fmt.Println("")
	fmt.Println("Usage: apexsim [options] <program.json> <mode> [cycles|address]")
	fmt.Println("")
	fmt.Println("Modes: Initialize, Simulate, Display, Single_Step, ShowMem")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -multi-fu  Use the multi-function-unit engine")
	fmt.Println("  -config    Path to engine configuration JSON file")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/apexsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/apexsim' instead.")
	}
}
