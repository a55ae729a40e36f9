// Command stackscout detects a repository's build stack.
package main

import (
	"github.com/joho/godotenv"

	"github.com/stackscout/stackscout/internal/cli"
)

func main() {
	// STACKSCOUT_* settings may live in a local .env; it is optional.
	_ = godotenv.Load()
	cli.Execute()
}
