package consoles

import (
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/stages"
)

// Request is one dispatched stage call. Source is captured when the request is built.
type Request struct {
	ID       uint64
	Stage    stages.Stage
	Source   string
	Revision uint64
}

// Controller tracks the selected stage, the stage whose result is displayed, and the
// requests in flight.
// The displayed result always belongs to lastExecuted; a result is never shown under
// another stage's tab.
// Controller is driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	selected     stages.Stage
	lastExecuted stages.Stage
	revision     uint64
	displayed    results.Result
	lastID       uint64
	inFlight     map[uint64]Request
}

func NewController() *Controller {
	return &Controller{
		selected: stages.Lexical,
		inFlight: make(map[uint64]Request),
	}
}

func (c *Controller) Selected() stages.Stage {
	return c.selected
}

func (c *Controller) LastExecuted() stages.Stage {
	return c.lastExecuted
}

// Displayed returns the current result, nil when nothing is shown
func (c *Controller) Displayed() results.Result {
	return c.displayed
}

// Pending reports whether a request for the selected stage is in flight
func (c *Controller) Pending() bool {
	for _, req := range c.inFlight {
		if req.Stage == c.selected {
			return true
		}
	}
	return false
}

// Select handles the user selecting stage. It returns the request to dispatch, or nil
// when no remote call is needed.
func (c *Controller) Select(stage stages.Stage, source string, revision uint64) *Request {
	switch stage {

	case stages.Execute:
		return c.Execute(source, revision)

	case stages.Theory:
		c.selected = stage
		c.clear()
		return nil

	case stages.Lexical, stages.Syntactic, stages.Semantic:
		c.selected = stage
		if stage == c.lastExecuted && revision == c.revision {
			return nil
		}
		return c.dispatch(stage, source, revision)

	}

	return nil
}

// Execute always dispatches a run of source, regardless of what was run before
func (c *Controller) Execute(source string, revision uint64) *Request {
	c.selected = stages.Execute
	return c.dispatch(stages.Execute, source, revision)
}

func (c *Controller) dispatch(stage stages.Stage, source string, revision uint64) *Request {
	c.clear()
	c.lastID++
	req := Request{
		ID:       c.lastID,
		Stage:    stage,
		Source:   source,
		Revision: revision,
	}
	c.inFlight[req.ID] = req
	return &req
}

func (c *Controller) clear() {
	c.displayed = nil
	c.lastExecuted = stages.None
	c.revision = 0
}

// Resolve feeds the outcome of req back. It reports whether the result is displayed;
// results for a stage that is no longer selected are dropped.
func (c *Controller) Resolve(req Request, result results.Result) bool {
	delete(c.inFlight, req.ID)
	if req.Stage != c.selected {
		return false
	}
	if result == nil {
		result = results.Failure{
			Stage:   req.Stage,
			Message: "empty result",
		}
	}
	c.displayed = result
	if _, ok := result.(results.Failure); ok {
		// a failed stage is retried on the next selection
		c.lastExecuted = stages.None
		c.revision = 0
	} else {
		c.lastExecuted = req.Stage
		c.revision = req.Revision
	}
	return true
}
