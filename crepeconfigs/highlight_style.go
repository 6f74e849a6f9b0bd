package crepeconfigs

import (
	"os"

	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/vars"
)

type HighlightStyle string

func (Module) HighlightStyle(
	loader configs.Loader,
) HighlightStyle {
	return vars.FirstNonZero(
		configs.First[HighlightStyle](loader, "highlight_style"),
		HighlightStyle(os.Getenv("CREPE_HIGHLIGHT_STYLE")),
		"monokai",
	)
}
