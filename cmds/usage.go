package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	writeCommands(w, p.commands, 1)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer, print each command once
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd != nil && cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if cmd != nil && len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, depth+1)
		}
	}
}
