package debugs

import (
	"testing"

	"github.com/reusee/caesar/caesarlang"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		result := caesarlang.ParseProgram(`shift 3; encode "abc";`)
		tap(t.Context(), "test", map[string]any{
			"result": result,
			"foo":    42,
		})
	})
}
