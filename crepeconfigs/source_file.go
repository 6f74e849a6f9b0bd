package crepeconfigs

import (
	"os"

	"github.com/reusee/crepe/cmds"
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/vars"
)

// SourceFile is the program file bound to the editor. Empty means the built-in sample.
type SourceFile string

var sourceFileFlag = cmds.Var[string]("file", "program file to load")

func (Module) SourceFile(
	loader configs.Loader,
) SourceFile {
	return vars.FirstNonZero(
		SourceFile(*sourceFileFlag),
		configs.First[SourceFile](loader, "source_file"),
		SourceFile(os.Getenv("CREPE_SOURCE_FILE")),
	)
}
