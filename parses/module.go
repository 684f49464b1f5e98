package parses

import (
	"github.com/reusee/caesar/caesarconfigs"
	"github.com/reusee/caesar/logs"
	"github.com/reusee/caesar/metrics"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs caesarconfigs.Module
	Logs    logs.Module
	Metrics metrics.Module
}
