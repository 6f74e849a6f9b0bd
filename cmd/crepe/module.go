package main

import (
	"github.com/reusee/crepe/consoles"
	"github.com/reusee/crepe/crepeconfigs"
	"github.com/reusee/crepe/debugs"
	"github.com/reusee/crepe/theories"
	"github.com/reusee/crepe/tuis"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs  crepeconfigs.Module
	Consoles consoles.Module
	Theories theories.Module
	TUIs     tuis.Module
	Debugs   debugs.Module
}
