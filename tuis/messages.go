package tuis

import (
	"github.com/reusee/crepe/consoles"
	"github.com/reusee/crepe/theories"
)

type resolvedMsg struct {
	resolution consoles.Resolution
}

type theoryMsg struct {
	document *theories.Document
	err      error
}

// sourceChangedMsg carries the content of the source file after an external edit
type sourceChangedMsg struct {
	text string
}

type watchErrMsg struct {
	err error
}

type savedMsg struct {
	path string
	err  error
}
