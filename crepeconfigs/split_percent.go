package crepeconfigs

import (
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/vars"
)

// SplitPercent is the initial editor pane width
type SplitPercent int

const (
	MinSplitPercent SplitPercent = 20
	MaxSplitPercent SplitPercent = 80
)

func (Module) SplitPercent(
	loader configs.Loader,
) SplitPercent {
	percent := vars.FirstNonZero(
		configs.First[SplitPercent](loader, "split_percent"),
		50,
	)
	return max(MinSplitPercent, min(MaxSplitPercent, percent))
}
