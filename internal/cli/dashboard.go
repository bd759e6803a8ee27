package cli

import (
	"context"

	"github.com/dmitrijs2005/adatasks/internal/models"
)

// globalSummary counts the tasks of every list.
func globalSummary(tasks TaskService) models.ListStats {
	var s models.ListStats
	for _, t := range tasks.AllTasksGlobal() {
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

// WatchDashboard logs a refreshed global summary every time updates fires,
// until ctx is done or updates is closed.
func (a *App) WatchDashboard(ctx context.Context, updates <-chan struct{}) {
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
			a.mu.Lock()
			s := globalSummary(a.tasks)
			lists := len(a.tasks.AllLists())
			a.mu.Unlock()

			a.logger.Info(ctx, "dashboard refreshed",
				"lists", lists, "total", s.Total, "completed", s.Completed, "pending", s.Pending)

		case <-ctx.Done():
			return
		}
	}
}
