package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type callLog struct {
	calls []string
	args  [][]string
}

func (c *callLog) handler(name string, err error) handler {
	return func(_ context.Context, args []string) error {
		c.calls = append(c.calls, name)
		c.args = append(c.args, args)
		return err
	}
}

func TestRunREPL_DispatchAndQuit(t *testing.T) {
	log := &callLog{}
	cmds := map[string]handler{
		"add":    log.handler("add", nil),
		"toggle": log.handler("toggle", nil),
		"boom":   log.handler("boom", errors.New("kaput")),
	}

	input := strings.Join([]string{
		"",
		"help",
		"ADD buy  milk",
		"toggle 42",
		"boom",
		"foobar",
		"quit",
		"add never",
	}, "\n")
	var out bytes.Buffer

	runREPL(context.Background(), cmds, func(context.Context) string { return "guest @ Trabalho" }, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, []string{"add", "toggle", "boom"}, log.calls)
	assert.Equal(t, []string{"buy", "milk"}, log.args[0])
	assert.Equal(t, []string{"42"}, log.args[1])

	printed := out.String()
	assert.Contains(t, printed, "ada [guest @ Trabalho] > ")
	assert.Contains(t, printed, "Available commands: help, add, boom, toggle, exit")
	assert.Contains(t, printed, "error: kaput")
	assert.Contains(t, printed, "Unknown command: foobar")
	assert.Contains(t, printed, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	log := &callLog{}
	cmds := map[string]handler{"tasks": log.handler("tasks", nil)}
	var out bytes.Buffer

	runREPL(context.Background(), cmds, func(context.Context) string { return "" }, bufio.NewReader(strings.NewReader("tasks\ntasks")), &out)

	assert.Equal(t, []string{"tasks", "tasks"}, log.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	log := &callLog{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	runREPL(ctx, map[string]handler{"tasks": log.handler("tasks", nil)}, func(context.Context) string { return "" }, bufio.NewReader(strings.NewReader("tasks\n")), &out)

	assert.Empty(t, log.calls)
}
