package caesarconfigs

import (
	"github.com/reusee/caesar/cmds"
	"github.com/reusee/caesar/configs"
	"github.com/reusee/caesar/vars"
)

// MaxErrors stops a parse after that many errors. Zero means no limit.
type MaxErrors int

var maxErrorsFlag = cmds.Var[int]("-max-errors")

func init() {
	cmds.GlobalExecutor.Describe("-max-errors", "stop parsing after N errors", "N")
}

func (Module) MaxErrors(
	loader configs.Loader,
) MaxErrors {
	return MaxErrors(vars.FirstNonZero(
		*maxErrorsFlag,
		configs.First[int](loader, "max_errors"),
	))
}
