package ciphers

import (
	"context"
	"testing"

	"github.com/reusee/caesar/caesarlang"
	"github.com/reusee/caesar/logs"
	"github.com/reusee/dscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	result := caesarlang.ParseProgram(`
		shift 3;
		encode "abc";
		decode "KHOOR" ;
		encode "abc" -1;
		shift 30;
		decode "e";
	`)
	require.True(t, result.OK(), "%v", result.Err())

	results, err := Evaluate(context.Background(), result.Program)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, DirectionEncode, results[0].Direction)
	assert.Equal(t, "DEF", results[0].Output)
	assert.Equal(t, 3, results[0].Shift)

	assert.Equal(t, DirectionDecode, results[1].Direction)
	assert.Equal(t, "HELLO", results[1].Output)

	assert.Equal(t, "ZAB", results[2].Output)
	assert.Equal(t, 25, results[2].Shift)

	assert.Equal(t, "A", results[3].Output)
	assert.Equal(t, 4, results[3].Shift)
	assert.Same(t, result.Program.Statements[5], results[3].Statement)
}

func TestEvaluateCanceled(t *testing.T) {
	result := caesarlang.ParseProgram(`shift 1; encode "a";`)
	require.True(t, result.OK())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Evaluate(ctx, result.Program)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRun(t *testing.T) {
	result := caesarlang.ParseProgram(`encode "hello world" 4;`)
	require.True(t, result.OK())

	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return t.Output()
		},
	).Call(func(
		run Run,
	) {
		results, err := run(t.Context(), result.Program)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "LIPPS ASVPH", results[0].Output)
	})
}
