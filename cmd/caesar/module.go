package main

import (
	"io"
	"os"

	"github.com/reusee/caesar/ciphers"
	"github.com/reusee/caesar/debugs"
	"github.com/reusee/caesar/parses"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Parses  parses.Module
	Ciphers ciphers.Module
	Debugs  debugs.Module
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

type Stderr io.Writer

func (Module) Stderr() Stderr {
	return os.Stderr
}

// Options are the driver switches given on the command line.
type Options struct {
	Eval    bool
	Metrics bool
	Tap     bool
}

func (Module) Options() Options {
	return Options{
		Eval:    *evalFlag,
		Metrics: *metricsFlag,
		Tap:     *tapFlag,
	}
}
