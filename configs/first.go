package configs

import (
	"errors"
	"fmt"
)

// First returns the value at path in the first file defining it, or the zero
// value. Load and decode errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
