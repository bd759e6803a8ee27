package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for REPL chrome (prompt aside).
var printlnFn = fmt.Fprintln

type handler func(ctx context.Context, args []string) error

// runREPL reads one command per line, splits it into a name and arguments
// and dispatches to cmds. Unknown commands are reported back to the user.
// The loop exits on EOF, on "exit" or "quit", or when ctx is cancelled.
// Handler errors are printed and do not stop the loop.
func runREPL(ctx context.Context, cmds map[string]handler, statusFn func(context.Context) string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "ada [%s] > ", statusFn(ctx))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printlnFn(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn(w, "Bye!")
			return
		case "help", "?":
			printlnFn(w, "Available commands:", strings.Join(commandNames(cmds), ", "))
			continue
		}

		h, ok := cmds[cmd]
		if !ok {
			printlnFn(w, "Unknown command:", cmd)
			continue
		}
		if err := h(ctx, args); err != nil {
			printlnFn(w, "error:", err)
		}
	}
}

func commandNames(cmds map[string]handler) []string {
	names := make([]string, 0, len(cmds)+2)
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(append([]string{"help"}, names...), "exit")
}
