package theories

import (
	"github.com/reusee/crepe/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Panel(
	fetch Fetch,
	logger logs.Logger,
) *Panel {
	return NewPanel(fetch, logger)
}
