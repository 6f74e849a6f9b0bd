package crepeconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/crepe/cmds"
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/vars"
)

// LogFile receives the records of the interactive console
type LogFile string

var logFileFlag = cmds.Var[string]("-log-file", "log file of the interactive console")

func (Module) LogFile(
	loader configs.Loader,
) LogFile {
	return vars.FirstNonZero(
		LogFile(*logFileFlag),
		configs.First[LogFile](loader, "log_file"),
		LogFile(os.Getenv("CREPE_LOG_FILE")),
		defaultLogFile(),
	)
}

func defaultLogFile() LogFile {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return LogFile(filepath.Join(dir, "crepe", "crepe.log"))
}
