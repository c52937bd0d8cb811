package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"binop-stats/internal/app"
	"binop-stats/internal/shared/configs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Built-in configuration only: the CLI takes no flags and reads no environment.
	cfg, err := configs.LoadConfig("")
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	application, err := app.New(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize app: %v\n", err)
		return 1
	}

	return application.Run(context.Background(), args)
}
