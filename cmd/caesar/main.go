package main

import (
	"context"
	"os"

	"github.com/reusee/caesar/caesarconfigs"
	"github.com/reusee/caesar/cmds"
	"github.com/reusee/caesar/modes"
	"github.com/reusee/dscope"
)

var (
	evalFlag    = cmds.Switch("-eval")
	metricsFlag = cmds.Switch("-metrics")
	tapFlag     = cmds.Switch("-tap")
)

func init() {
	cmds.GlobalExecutor.Describe("-eval", "apply the cipher to every encode and decode statement")
	cmds.GlobalExecutor.Describe("-metrics", "print parse metrics after the run")
	cmds.GlobalExecutor.Describe("-tap", "inspect the parse result in a starlark repl")
}

func main() {
	args := cmds.Execute(os.Args[1:])

	var code int
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		_ caesarconfigs.LogLevel,
		run Run,
	) {
		code = run(context.Background(), args)
	})
	os.Exit(code)
}
