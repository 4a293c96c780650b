package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"chemfetch/internal/app"
	"chemfetch/internal/cli"
	"chemfetch/internal/logging"
)

// Execute runs the lookup for an os.Args-shaped argument list and returns
// the process exit code. A missing compound name is a usage error (code 1);
// a completed lookup is code 0 even when every field came back "Not found".
func Execute(args []string) (int, error) {
	return execute(args, os.Stdout, slog.New(logging.NewTerminalHandler()))
}

func execute(args []string, stdout io.Writer, logger *slog.Logger) (int, error) {
	opts, initConfig, err := cli.ParseArgs(args[1:])
	if err != nil {
		var exitErr cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code, exitErr.Err
		}
		return 1, err
	}

	if initConfig {
		return 0, cli.RunConfigWizard()
	}

	if opts.Interactive {
		name, err := cli.PromptName()
		if err != nil {
			return 1, err
		}
		opts.Name = name
	}

	if opts.Name == "" {
		fmt.Fprintln(stdout, cli.Usage())
		return 1, nil
	}

	return 0, app.Run(context.Background(), logger, opts, stdout)
}
