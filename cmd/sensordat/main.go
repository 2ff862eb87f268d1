package main

import (
	"os"

	"github.com/wonny/sensordat/cmd/sensordat/commands"
)

// main is the entry point for the sensordat CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/sensordat [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
