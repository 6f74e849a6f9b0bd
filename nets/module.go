package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
