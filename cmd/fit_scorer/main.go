// Command fit_scorer scores how well a CV fits a job description.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/fit-scorer/internal/config"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = config.LoadDotEnv("")

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
