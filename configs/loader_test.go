package configs

import (
	"errors"
	"testing"
)

var testSchema = `
max_errors?: int & >=0
dump_format?: "yaml" | "text"
log_level?: string
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var n int
	err := loader.AssignFirst("max_errors", &n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}

	var format string
	err = loader.AssignFirst("dump_format", &format)
	if err != nil {
		t.Fatal(err)
	}
	if format != "yaml" {
		t.Fatalf("got %q", format)
	}

	err = loader.AssignFirst("log_level", &format)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var ns []int
	for value, err := range loader.IterCueValues("max_errors") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		ns = append(ns, n)
	}
	if len(ns) != 2 || ns[0] != 3 || ns[1] != 5 {
		t.Fatalf("got %v", ns)
	}

	if n := First[int](loader, "max_errors"); n != 3 {
		t.Fatalf("got %d", n)
	}
	// only in the second file
	if level := First[string](loader, "log_level"); level != "debug" {
		t.Fatalf("got %q", level)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var b bool
	err := loader.AssignFirst("unknown_field", &b)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestWrongType(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/wrong_type.cue",
	}, testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/nope.cue",
	}, "")
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
	if got := loader.Paths(); len(got) != 1 || got[0] != "testdata/nope.cue" {
		t.Fatalf("got %v", got)
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if n := First[int](loader, "max_errors"); n != 0 {
		t.Fatalf("got %d", n)
	}
}
