package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	printed := make(map[*Command]bool)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		cmd := commands[name]
		if cmd == nil || printed[cmd] || slices.Contains(cmd.Aliases, name) {
			continue
		}
		printed[cmd] = true

		line := indent + name
		if len(cmd.ArgNames) > 0 {
			line += " " + strings.Join(cmd.ArgNames, " ")
		}
		if len(cmd.Aliases) > 0 {
			line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)

		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
