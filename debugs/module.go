package debugs

import (
	"github.com/reusee/crepe/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
