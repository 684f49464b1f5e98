package caesarconfigs

import (
	"github.com/reusee/caesar/cmds"
	"github.com/reusee/caesar/configs"
	"github.com/reusee/caesar/vars"
)

// MaxSourceBytes bounds the input read by the driver before lexing.
type MaxSourceBytes int64

const DefaultMaxSourceBytes = 16 << 20

var maxSourceBytesFlag = cmds.Var[int64]("-max-bytes")

func init() {
	cmds.GlobalExecutor.Describe("-max-bytes", "maximum source size in bytes", "N")
}

func (Module) MaxSourceBytes(
	loader configs.Loader,
) MaxSourceBytes {
	return MaxSourceBytes(vars.FirstNonZero(
		*maxSourceBytesFlag,
		configs.First[int64](loader, "max_source_bytes"),
		DefaultMaxSourceBytes,
	))
}
