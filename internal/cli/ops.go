package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adatasks/internal/filex"
	"github.com/dmitrijs2005/adatasks/internal/report"
	"github.com/dmitrijs2005/adatasks/internal/services"
)

// Stats prints the counters of every list and the global totals.
func (a *App) Stats(_ context.Context, _ []string) error {
	for _, l := range a.tasks.AllLists() {
		s := a.tasks.ListStats(l.ID)
		fmt.Fprintf(a.out, "%-20s total %3d  completed %3d  pending %3d\n", l.Name, s.Total, s.Completed, s.Pending)
	}
	g := globalSummary(a.tasks)
	fmt.Fprintf(a.out, "%-20s total %3d  completed %3d  pending %3d\n", "All lists", g.Total, g.Completed, g.Pending)
	return nil
}

// Cleanup drops duplicate and orphan tasks.
func (a *App) Cleanup(ctx context.Context, _ []string) error {
	r, err := a.tasks.CleanupInconsistentData(ctx)
	a.say(services.NewOutcome(err, services.CleanupMessage(r)))
	return nil
}

// Report writes a PDF of all lists and tasks to the given file, creating
// missing directories.
func (a *App) Report(_ context.Context, args []string) error {
	path, err := argOrPrompt(a.reader, args, "Enter output file", a.out)
	if err != nil {
		return err
	}

	f, err := filex.CreateFile(path)
	if err != nil {
		return err
	}
	if err := report.Render(f, a.tasks.AllLists(), a.tasks.ListStats, a.tasks.AllTasksGlobal()); err != nil {
		f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Report written to %s\n", path)
	return nil
}

// Backup uploads a snapshot and prints its key.
func (a *App) Backup(ctx context.Context, _ []string) error {
	key, err := a.backup.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Backup stored as %s\n", key)
	return nil
}

// Restore replaces the stored data with a backup and reloads the managers.
func (a *App) Restore(ctx context.Context, args []string) error {
	key, err := argOrPrompt(a.reader, args, "Enter backup key", a.out)
	if err != nil {
		return err
	}
	if err := a.backup.Import(ctx, key); err != nil {
		return err
	}

	auth, tasks, err := a.reload(ctx)
	if err != nil {
		return fmt.Errorf("reload after restore: %w", err)
	}
	a.auth, a.tasks = auth, tasks
	fmt.Fprintf(a.out, "Restored %s\n", key)
	return nil
}
