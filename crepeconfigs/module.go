package crepeconfigs

import (
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
