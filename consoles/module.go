package consoles

import (
	"github.com/reusee/crepe/buffers"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/remotes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Remotes remotes.Module
	Logs    logs.Module
}

func (Module) Session(
	buffer *buffers.Buffer,
	analyze remotes.Analyze,
	logger logs.Logger,
) *Session {
	return NewSession(buffer, analyze, logger)
}

// Buffer holds the built-in sample until a program is loaded
func (Module) Buffer() *buffers.Buffer {
	return buffers.New(buffers.Sample)
}
