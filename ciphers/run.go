package ciphers

import (
	"context"

	"github.com/reusee/caesar/caesarlang"
	"github.com/reusee/caesar/logs"
)

type Run func(ctx context.Context, program *caesarlang.Program) ([]Result, error)

func (Module) Run(
	logger logs.Logger,
) Run {
	return func(ctx context.Context, program *caesarlang.Program) ([]Result, error) {
		results, err := Evaluate(ctx, program)
		for _, result := range results {
			logger.DebugContext(ctx, "evaluated",
				"pos", result.Statement.StatementPos().String(),
				"direction", string(result.Direction),
				"shift", result.Shift,
			)
		}
		if err != nil {
			return results, logs.WrapSpan(ctx, err)
		}
		return results, nil
	}
}
