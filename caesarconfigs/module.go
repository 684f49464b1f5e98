package caesarconfigs

import (
	"github.com/reusee/caesar/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
