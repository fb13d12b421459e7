package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.Usage(os.Stderr)
}

func (p *Executor) Usage(w io.Writer) {
	printUsage(w, p.commands, 0)
}

func printUsage(w io.Writer, commands map[string]*Command, depth int) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		printed[command] = true

		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		if command.Func != nil {
			fnType := command.Func.Type()
			for i := range fnType.NumIn() {
				fmt.Fprintf(&b, " <%v>", fnType.In(i))
			}
		}
		if len(command.Aliases) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(command.Aliases, ", "))
		}
		if command.Description != "" {
			b.WriteString("\t")
			b.WriteString(command.Description)
		}
		fmt.Fprintln(w, b.String())

		printUsage(w, command.Subs, depth+1)
	}
}
