// Package main is the entry point for the convert CLI.
package main

import (
	"os"

	"go.uber.org/zap"

	"unit-convert/cmd/cli/cmd"
	"unit-convert/internal/errors"
	"unit-convert/internal/logging"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		logging.Debug("command failed", zap.String("type", string(errors.TypeOf(err))))
	}
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
