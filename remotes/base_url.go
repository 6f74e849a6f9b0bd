package remotes

import (
	"os"
	"strings"

	"github.com/reusee/crepe/cmds"
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/vars"
)

// BaseURL is the root of the analysis backend, without trailing slash
type BaseURL string

const FallbackBaseURL BaseURL = "http://127.0.0.1:5000"

var baseURLFlag = cmds.Var[string]("-base-url", "backend root URL")

func (Module) BaseURL(
	loader configs.Loader,
	logger logs.Logger,
) (ret BaseURL) {
	defer func() {
		logger.Info("backend", "base_url", ret)
	}()
	url := vars.FirstNonZero(
		BaseURL(*baseURLFlag),
		configs.First[BaseURL](loader, "base_url"),
		BaseURL(os.Getenv("CREPE_BASE_URL")),
		FallbackBaseURL,
	)
	return BaseURL(strings.TrimRight(string(url), "/"))
}
