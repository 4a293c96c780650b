package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"chemfetch/internal/app"
	"chemfetch/internal/cli"
	"chemfetch/internal/logging"
)

func main() {
	opts, initConfig, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		if exitErr, ok := err.(cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Error())
			os.Exit(exitErr.Code)
		}
		fatal(err)
	}

	if initConfig {
		if err := cli.RunConfigWizard(); err != nil {
			fatal(err)
		}
		return
	}

	if opts.Interactive {
		name, err := cli.PromptName()
		if err != nil {
			fatal(err)
		}
		opts.Name = name
	}

	if opts.Name == "" {
		fmt.Println(cli.Usage())
		os.Exit(1)
	}

	logger := slog.New(logging.NewTerminalHandler())
	if err := app.Run(context.Background(), logger, opts, os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
