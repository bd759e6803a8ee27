package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/adatasks/internal/models"
	"github.com/dmitrijs2005/adatasks/internal/report"
	"github.com/dmitrijs2005/adatasks/internal/services"
)

// Add creates a task in the current list. With arguments they form the
// title and the priority is medium; otherwise both are prompted for.
func (a *App) Add(ctx context.Context, args []string) error {
	title, err := argOrPrompt(a.reader, args, "Enter task title", a.out)
	if err != nil {
		return err
	}
	priority := ""
	if len(args) == 0 {
		if priority, err = getSimpleText(a.reader, "Priority (low/medium/high, empty for medium)", a.out); err != nil {
			return err
		}
	}

	t, err := a.tasks.AddTask(ctx, title, priority)
	a.say(services.NewOutcome(err, services.MsgTaskAdded))
	if err == nil {
		fmt.Fprintf(a.out, "id: %d\n", t.ID)
	}
	return nil
}

// Tasks prints every task of the current list.
func (a *App) Tasks(_ context.Context, _ []string) error {
	a.printTasks(a.tasks.AllTasks())
	return nil
}

// Pending prints the open tasks of the current list.
func (a *App) Pending(_ context.Context, _ []string) error {
	a.printTasks(a.tasks.PendingTasks())
	return nil
}

// Done prints the completed tasks of the current list.
func (a *App) Done(_ context.Context, _ []string) error {
	a.printTasks(a.tasks.CompletedTasks())
	return nil
}

// Toggle flips a task between pending and completed.
func (a *App) Toggle(ctx context.Context, args []string) error {
	id, ok := a.taskID(args)
	if !ok {
		return nil
	}
	_, err := a.tasks.ToggleTask(ctx, id)
	a.say(services.NewOutcome(err, services.MsgTaskToggled))
	return nil
}

// Remove deletes a task.
func (a *App) Remove(ctx context.Context, args []string) error {
	id, ok := a.taskID(args)
	if !ok {
		return nil
	}
	_, err := a.tasks.RemoveTask(ctx, id)
	a.say(services.NewOutcome(err, services.MsgTaskRemoved))
	return nil
}

// Clear removes the completed tasks of the current list.
func (a *App) Clear(ctx context.Context, _ []string) error {
	n, err := a.tasks.RemoveCompletedTasks(ctx)
	a.say(services.NewOutcome(err, services.RemovedCompletedMessage(n)))
	return nil
}

func (a *App) taskID(args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: <command> <task id>")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid task id %q\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) printTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintf(a.out, "%d  %s\n", t.ID, report.Line(t))
	}
}
