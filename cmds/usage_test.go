package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(int) {}).Args("N").Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(strings.Builder)
	executor.PrintUsage(buf)
	out := buf.String()

	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"    qux N\tQUX",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases printed more than once:\n%s", out)
	}
}
