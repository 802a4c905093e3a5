package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/vinciapp/vinci/cmd"
)

func main() {
	// Optional .env for local overrides like VINCI_DB.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
