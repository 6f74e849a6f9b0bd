package consoles

import (
	"context"

	"github.com/reusee/crepe/buffers"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/remotes"
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/stages"
)

type Resolution struct {
	Request Request
	Result  results.Result
}

// Job performs one remote call. Jobs may run concurrently.
type Job func(ctx context.Context) Resolution

// Session binds the controller to the source buffer and the backend.
// Select, Execute and Apply must be called from one event loop.
type Session struct {
	controller *Controller
	buffer     *buffers.Buffer
	analyze    remotes.Analyze
	logger     logs.Logger
}

func NewSession(buffer *buffers.Buffer, analyze remotes.Analyze, logger logs.Logger) *Session {
	return &Session{
		controller: NewController(),
		buffer:     buffer,
		analyze:    analyze,
		logger:     logger,
	}
}

func (s *Session) Controller() *Controller {
	return s.controller
}

func (s *Session) Buffer() *buffers.Buffer {
	return s.buffer
}

// Select returns the job to run for selecting stage, nil when no call is needed
func (s *Session) Select(stage stages.Stage) Job {
	source, revision := s.buffer.Snapshot()
	return s.job(s.controller.Select(stage, source, revision))
}

// Execute returns a job running the current source. It is never nil.
func (s *Session) Execute() Job {
	source, revision := s.buffer.Snapshot()
	return s.job(s.controller.Execute(source, revision))
}

func (s *Session) job(req *Request) Job {
	if req == nil {
		return nil
	}
	r := *req
	s.logger.Debug("dispatch",
		"request", r.ID,
		"stage", r.Stage,
		"revision", r.Revision,
	)
	return func(ctx context.Context) Resolution {
		return Resolution{
			Request: r,
			Result:  s.analyze(ctx, r.Stage, r.Source),
		}
	}
}

// Apply feeds a finished job back and reports whether its result is displayed
func (s *Session) Apply(resolution Resolution) bool {
	shown := s.controller.Resolve(resolution.Request, resolution.Result)
	if !shown {
		s.logger.Debug("stale result dropped",
			"request", resolution.Request.ID,
			"stage", resolution.Request.Stage,
			"selected", s.controller.Selected(),
		)
	}
	return shown
}

// Rendered returns the display text of the result area for analysis stages
func (s *Session) Rendered() string {
	return results.Render(s.controller.Displayed())
}
