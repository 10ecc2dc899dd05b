package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// exitMissingAPIKey distinguishes "no credential" from every other failure
// so wrappers can prompt for a key instead of retrying.
const exitMissingAPIKey = 2

func main() {
	// A .env in the working directory may carry FORMBRICKS_API_KEY.
	_ = godotenv.Load()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errMissingAPIKey) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitMissingAPIKey)
		}
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
