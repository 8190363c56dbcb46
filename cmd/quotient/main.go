// This is the main entry point for the quotient CLI.
// Build with: go build -o bin/quotient ./cmd/quotient
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
