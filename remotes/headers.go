package remotes

import (
	"net/http"
	"net/textproto"
	"strings"

	"github.com/reusee/crepe/cmds"
	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/logs"
)

// Headers are set on every backend request
type Headers http.Header

var headerFlags = cmds.Collect[string]("-header", "extra \"Name: value\" header for backend requests")

// Headers merges "Name: value" lines from flags and from every config file.
// Flags come first; malformed lines are skipped.
func (Module) Headers(
	loader configs.Loader,
	logger logs.Logger,
) Headers {
	lines := append([]string(nil), *headerFlags...)
	for list := range configs.All[[]string](loader, "headers") {
		lines = append(lines, list...)
	}

	ret := make(Headers)
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			logger.Warn("bad header", "line", line)
			continue
		}
		key := textproto.CanonicalMIMEHeaderKey(name)
		if _, ok := ret[key]; ok {
			// earlier sources win
			continue
		}
		ret[key] = []string{strings.TrimSpace(value)}
	}
	return ret
}

func (h Headers) apply(req *http.Request) {
	for key, values := range h {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
}
