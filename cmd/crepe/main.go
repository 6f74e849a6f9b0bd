package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/reusee/crepe/automata"
	"github.com/reusee/crepe/buffers"
	"github.com/reusee/crepe/cmds"
	"github.com/reusee/crepe/consoles"
	"github.com/reusee/crepe/crepeconfigs"
	"github.com/reusee/crepe/debugs"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/modes"
	"github.com/reusee/crepe/results"
	"github.com/reusee/crepe/stages"
	"github.com/reusee/crepe/theories"
	"github.com/reusee/crepe/tuis"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	stageArg = cmds.Var[string]("stage", "print one stage result: lexical, syntactic, semantic, execute or theory")
	tapFlag  = cmds.Switch("-tap", "open a starlark prompt on the response")
)

const Theory = `
Console model:
The editor buffer is the only program text. Every stage call captures the text and its
revision when it is dispatched, so edits made while a call is in flight never leak into it.

The controller keeps two stages: the selected tab, and the stage whose result is on screen.
Selecting the stage already on screen with an unchanged buffer is free. Any other selection
clears the screen and dispatches one call. Run always dispatches, since running has effects.

There is no cancellation. Each call is tagged with its stage, and a result arriving for a
stage that is no longer selected is dropped. A failed call is shown but not remembered, so
selecting the stage again retries it.

The theory document is fetched once per process. A failed fetch is logged and the panel keeps
its loading text.
`

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	stage := stages.None
	if *stageArg != "" {
		var err error
		stage, err = stages.Parse(*stageArg)
		ce(err)
	}
	interactive := stage == stages.None &&
		term.IsTerminal(int(os.Stdout.Fd()))

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var closeLog io.Closer
	if interactive {
		// records must not draw over the console
		scope.Call(func(
			logFile crepeconfigs.LogFile,
		) {
			writer, closer, err := logs.OpenFile(string(logFile))
			ce(err)
			closeLog = closer
			scope = scope.Fork(
				func() logs.Writer {
					return writer
				},
			)
		})
	}

	scope.Call(func(
		sourceFile crepeconfigs.SourceFile,
		logger logs.Logger,
	) {
		buffer := buffers.New(buffers.Sample)
		if sourceFile != "" {
			err := buffer.Load(string(sourceFile))
			if errors.Is(err, fs.ErrNotExist) {
				logger.Info("new source file", "path", sourceFile)
			} else {
				ce(err)
			}
		}
		if stdin := getStdinContent(); len(stdin) > 0 {
			buffer.SetText(string(stdin))
		}
		scope = scope.Fork(
			dscope.Provide(buffer),
		)
	})

	if interactive {
		defer closeLog.Close()
		scope.Call(func(
			run tuis.Run,
		) {
			ce(run(ctx))
		})
		return
	}

	if stage == stages.None {
		stage = stages.Lexical
	}

	var failed bool
	scope.Call(func(
		session *consoles.Session,
		panel *theories.Panel,
		logger logs.Logger,
		tap debugs.Tap,
	) {

		if stage == stages.Theory {
			document, err := panel.Load()(ctx)
			panel.Apply(ctx, document, err)
			if err != nil {
				fmt.Fprintln(os.Stderr, results.Failure{
					Stage:   stages.Theory,
					Message: err.Error(),
				}.Error())
				failed = true
				return
			}
			fmt.Println(panel.Render(automata.Options{
				Width: terminalWidth(),
			}))
			return
		}

		job := session.Select(stage)
		if job == nil {
			return
		}
		resolution := job(ctx)
		session.Apply(resolution)
		rendered := session.Rendered()

		if _, ok := resolution.Result.(results.Failure); ok {
			fmt.Fprintln(os.Stderr, rendered)
			failed = true
		} else {
			fmt.Println(rendered)
		}

		if *tapFlag {
			tap(ctx, stage.String()+" response", map[string]any{
				"stage":    stage.String(),
				"payload":  decodePayload(results.Payload(resolution.Result)),
				"rendered": rendered,
				"indent": func(s string) string {
					return results.Render(results.TokenReport{
						Payload: json.RawMessage(s),
					})
				},
			})
		}

		logger.Info("done",
			"stage", stage,
			"failed", failed,
		)
	})

	if failed {
		os.Exit(1)
	}
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}

func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func decodePayload(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return string(raw)
	}
	return v
}
