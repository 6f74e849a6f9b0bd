package remotes

import (
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
}
