package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/caesar/caesarconfigs"
	"github.com/reusee/caesar/caesarlang"
	"github.com/reusee/caesar/ciphers"
	"github.com/reusee/caesar/debugs"
	"github.com/reusee/caesar/logs"
	"github.com/reusee/caesar/metrics"
	"github.com/reusee/caesar/parses"
)

const (
	bannerStart   = "Parsing Caesar Cipher..."
	bannerSuccess = "Parsing completed successfully."
	bannerFailure = "Parsing failed."
)

// Run parses the file named by args, or stdin, and returns the exit status.
type Run func(ctx context.Context, args []string) int

func (Module) Run(
	stdout Stdout,
	stderr Stderr,
	options Options,
	dumpFormat caesarconfigs.DumpFormat,
	readSource parses.ReadSource,
	parse parses.Parse,
	evaluate ciphers.Run,
	tap debugs.Tap,
	m *metrics.Metrics,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, args []string) int {
		if len(args) > 1 {
			fmt.Fprintf(stderr, "too many arguments: %s\n", strings.Join(args, " "))
			return 1
		}
		switch dumpFormat {
		case "", "yaml", "text":
		default:
			fmt.Fprintf(stderr, "unknown dump format %q\n", dumpFormat)
			return 1
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		src, err := readSource(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		fmt.Fprintln(stdout, bannerStart)
		result := parse(ctx, src)

		if dumpFormat == "yaml" {
			if err := caesarlang.DumpYAML(stdout, result); err != nil {
				logger.ErrorContext(ctx, "dump", "error", err)
			}
		}

		code := 0
		if result.OK() {
			fmt.Fprintln(stdout, bannerSuccess)
			if dumpFormat == "text" {
				if err := caesarlang.Format(stdout, result.Program); err != nil {
					logger.ErrorContext(ctx, "dump", "error", err)
				}
			}
			if options.Eval {
				results, err := evaluate(ctx, result.Program)
				for _, r := range results {
					fmt.Fprintf(stdout, "%s %q %d: %s\n", r.Direction, r.Input, r.Shift, r.Output)
				}
				if err != nil {
					fmt.Fprintln(stderr, err)
					code = 1
				}
			}
		} else {
			printErrors(stderr, result.Errors)
			fmt.Fprintln(stdout, bannerFailure)
			code = 1
		}

		if options.Tap {
			tap(ctx, src.Name, map[string]any{
				"result": result,
				"source": src.Content,
			})
		}

		if options.Metrics {
			if err := m.WriteText(stdout); err != nil {
				logger.ErrorContext(ctx, "write metrics", "error", err)
			}
		}

		return code
	}
}

func printErrors(w Stderr, errs []error) {
	for _, err := range errs {
		fmt.Fprintln(w, err)
		var excerpter interface {
			Excerpt() string
		}
		if errors.As(err, &excerpter) {
			fmt.Fprint(w, excerpter.Excerpt())
		}
	}
}
