package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"task-tracker/internal/cli"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
)

func main() {
	// A missing .env is normal; anything else is worth a debug line
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Debugf("skipping .env: %v", err)
	}

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	factory := NewRepositoryFactory(getEnvironment())
	root := cli.NewRootCommand(cfg, factory.CreateRepository)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
