package tuis

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/crepe/buffers"
	"github.com/reusee/crepe/cmds"
	"github.com/reusee/crepe/consoles"
	"github.com/reusee/crepe/crepeconfigs"
	"github.com/reusee/crepe/logs"
	"github.com/reusee/crepe/theories"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

type Module struct {
	dscope.Module
	Consoles     consoles.Module
	Theories     theories.Module
	Crepeconfigs crepeconfigs.Module
	Logs         logs.Module
}

var watchFlag = cmds.Switch("-watch", "reload the program file when it changes")

// Run starts the interactive console and blocks until the user quits
type Run func(ctx context.Context) error

func (Module) Run(
	session *consoles.Session,
	panel *theories.Panel,
	logger logs.Logger,
	sourceFile crepeconfigs.SourceFile,
	split crepeconfigs.SplitPercent,
	style crepeconfigs.HighlightStyle,
) Run {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		var events chan tea.Msg
		if *watchFlag && sourceFile != "" {
			events = make(chan tea.Msg)
			send := func(msg tea.Msg) {
				select {
				case events <- msg:
				case <-ctx.Done():
				}
			}
			if err := buffers.Watch(
				ctx,
				string(sourceFile),
				func(content string) {
					send(sourceChangedMsg{text: content})
				},
				func(err error) {
					send(watchErrMsg{err: err})
				},
			); err != nil {
				return err
			}
			logger.Info("watching source file", "path", sourceFile)
		}

		model := NewModel(ctx, session, panel, logger, Config{
			SourceFile:   string(sourceFile),
			SplitPercent: int(split),
			Highlighter:  NewHighlighter(string(style)),
			Events:       events,
		})

		options := []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		}
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			// stdin carried the initial source
			options = append(options, tea.WithInputTTY())
		}
		program := tea.NewProgram(model, options...)
		_, err := program.Run()
		return err
	}
}
