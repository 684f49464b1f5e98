package parses

import (
	"context"
	"fmt"
	"time"

	"github.com/reusee/caesar/caesarconfigs"
	"github.com/reusee/caesar/caesarlang"
	"github.com/reusee/caesar/logs"
	"github.com/reusee/caesar/metrics"
	"github.com/reusee/caesar/modes"
)

// Parse parses one source in its own span and records metrics.
type Parse func(ctx context.Context, src *caesarlang.Source) *caesarlang.ParseResult

func (Module) Parse(
	logger logs.Logger,
	newSpan logs.NewSpan,
	m *metrics.Metrics,
	maxErrors caesarconfigs.MaxErrors,
	mode modes.Mode,
) Parse {
	return func(ctx context.Context, src *caesarlang.Source) *caesarlang.ParseResult {
		ctx, _ = newSpan(ctx, "", "source", src.Name)

		start := time.Now()
		result := caesarlang.ParseSource(src, caesarlang.WithMaxErrors(int(maxErrors)))
		elapsed := time.Since(start)
		m.Observe(result, elapsed)

		if !result.OK() {
			logger.InfoContext(ctx, "parse rejected",
				"errors", len(result.Errors),
				"duration", elapsed,
			)
			return result
		}

		logger.InfoContext(ctx, "parse accepted",
			"statements", len(result.Program.Statements),
			"duration", elapsed,
		)

		if mode == modes.ModeDevelopment {
			if err := checkRoundTrip(result.Program); err != nil {
				panic(err)
			}
		}

		return result
	}
}

// checkRoundTrip verifies that the formatted program parses back to itself.
func checkRoundTrip(program *caesarlang.Program) error {
	text := program.String()
	reparsed := caesarlang.ParseProgram(text)
	if err := reparsed.Err(); err != nil {
		return fmt.Errorf("reparse formatted program: %w\n%s", err, text)
	}
	if !caesarlang.Equal(program, reparsed.Program) {
		return fmt.Errorf("formatted program differs after reparse:\n%s", text)
	}
	return nil
}
