package caesarconfigs

import (
	"github.com/reusee/caesar/cmds"
	"github.com/reusee/caesar/configs"
	"github.com/reusee/caesar/vars"
)

// DumpFormat selects how an accepted program is printed: "yaml", "text", or
// empty for no dump.
type DumpFormat string

var dumpFormatFlag = cmds.Var[string]("-dump")

func init() {
	cmds.GlobalExecutor.Describe("-dump", "print the parse result as yaml or text", "FORMAT")
}

func (Module) DumpFormat(
	loader configs.Loader,
) DumpFormat {
	return DumpFormat(vars.FirstNonZero(
		*dumpFormatFlag,
		configs.First[string](loader, "dump_format"),
	))
}
