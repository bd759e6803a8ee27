package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/adatasks/internal/services"
)

// Lists prints every list with its counters; the current one is starred.
func (a *App) Lists(_ context.Context, _ []string) error {
	current := a.tasks.CurrentListID()
	for _, l := range a.tasks.AllLists() {
		mark := " "
		if l.ID == current {
			mark = "*"
		}
		s := a.tasks.ListStats(l.ID)
		fmt.Fprintf(a.out, "%s %s %-20s %-28s %d/%d done\n", mark, l.Icon, l.Name, l.ID, s.Completed, s.Total)
	}
	return nil
}

// NewList creates a list. Without arguments both the name and the icon are
// prompted for; with arguments they form the name and the icon is the default.
func (a *App) NewList(ctx context.Context, args []string) error {
	name, err := argOrPrompt(a.reader, args, "Enter list name", a.out)
	if err != nil {
		return err
	}
	icon := ""
	if len(args) == 0 && strings.TrimSpace(name) != "" {
		if icon, err = getSimpleText(a.reader, "Enter icon (empty for default)", a.out); err != nil {
			return err
		}
	}

	l, err := a.tasks.CreateList(ctx, name, icon)
	a.say(services.NewOutcome(err, services.MsgListCreated))
	if err == nil {
		fmt.Fprintf(a.out, "id: %s\n", l.ID)
	}
	return nil
}

// RemoveList deletes a list and its tasks.
func (a *App) RemoveList(ctx context.Context, args []string) error {
	id, err := argOrPrompt(a.reader, args, "Enter list id", a.out)
	if err != nil {
		return err
	}
	_, err = a.tasks.RemoveList(ctx, id)
	a.say(services.NewOutcome(err, services.MsgListRemoved))
	return nil
}

// Use switches the current list.
func (a *App) Use(ctx context.Context, args []string) error {
	id, err := argOrPrompt(a.reader, args, "Enter list id", a.out)
	if err != nil {
		return err
	}
	a.say(services.NewOutcome(a.tasks.SetCurrentList(ctx, id), services.MsgListSelected))
	return nil
}
