package parses

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/caesar/caesarconfigs"
	"github.com/reusee/caesar/caesarlang"
)

var ErrSourceTooLarge = errors.New("source too large")

// Stdin is the reader used when no path is given.
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// ReadSource loads the named file, or Stdin when path is empty.
type ReadSource func(path string) (*caesarlang.Source, error)

func (Module) ReadSource(
	maxBytes caesarconfigs.MaxSourceBytes,
	stdin Stdin,
) ReadSource {
	return func(path string) (*caesarlang.Source, error) {
		var r io.Reader = stdin
		name := "<stdin>"
		if path != "" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
			name = path
		}

		// one extra byte tells an exact fit from an overflow
		content, err := io.ReadAll(io.LimitReader(r, int64(maxBytes)+1))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if int64(len(content)) > int64(maxBytes) {
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrSourceTooLarge, name, maxBytes)
		}

		return caesarlang.NewSource(name, string(content)), nil
	}
}
