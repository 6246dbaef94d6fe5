// Package main is the entry point for the apollo CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apollo-gears/cli/internal/cmd"
	oerrors "github.com/apollo-gears/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// The command layer logs the errors it classifies itself.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Usage errors from cobra (unknown flag, wrong argument count).
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitGeneralError)
	}
}
