package logs

import (
	"io"
	"os"
)

// Writer receives the text log output. Tests fork it to t.Output().
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
