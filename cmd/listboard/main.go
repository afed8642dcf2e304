package main

import (
	"os"

	// LISTBOARD_CONFIG and friends may live in a local .env file.
	_ "github.com/joho/godotenv/autoload"

	"github.com/idilsaglam/listboard/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{Version: version}))
}
