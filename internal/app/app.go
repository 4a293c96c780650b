package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"chemfetch/internal/output"
	"chemfetch/internal/pubchem"
	"chemfetch/internal/resolve"
)

type Options struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	Format      output.Format
	Interactive bool
}

// Run performs one lookup and writes the result line to out. Resolution
// failures are logged and folded into the record, never returned; the only
// error paths left are output writing itself.
func Run(ctx context.Context, logger *slog.Logger, opts Options, out io.Writer) error {
	client := pubchem.New(opts.BaseURL, opts.UserAgent, opts.Timeout)
	resolver := resolve.New(client, logger)
	rec := resolver.Resolve(ctx, opts.Name)
	return output.Write(out, opts.Format, rec)
}
